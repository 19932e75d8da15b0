package types

// GetBlock is the result of getblock. Value holds one of:
//
//	GetBlockVariant3  verbosity=3, transactions with prevouts
//	GetBlockVariant2  verbosity=2, decoded transactions
//	GetBlockVariant1  verbosity=1, transaction ids
//	GetBlockVariant0  verbosity=0, hex-encoded block
//
// Candidates are tried in that order, so a payload that fits both a
// prevout-carrying and a plain decoded shape resolves to Variant3.
type GetBlock struct {
	Value GetBlockVariant
}

type GetBlockVariant interface {
	getBlock()
}

// GetBlockVariant0 is the serialized, hex-encoded block.
type GetBlockVariant0 string

type GetBlockVariant1 struct {
	Hash              string   `json:"hash"`
	Confirmations     int64    `json:"confirmations"`
	Size              int64    `json:"size"`
	StrippedSize      int64    `json:"strippedsize"`
	Weight            int64    `json:"weight"`
	Height            int64    `json:"height"`
	Version           int32    `json:"version"`
	VersionHex        string   `json:"versionHex"`
	MerkleRoot        string   `json:"merkleroot"`
	Tx                []string `json:"tx"`
	Time              int64    `json:"time"`
	MedianTime        int64    `json:"mediantime"`
	Nonce             uint32   `json:"nonce"`
	Bits              string   `json:"bits"`
	Difficulty        float64  `json:"difficulty"`
	Chainwork         string   `json:"chainwork"`
	NTx               int64    `json:"nTx"`
	PreviousBlockHash string   `json:"previousblockhash,omitempty"`
	NextBlockHash     string   `json:"nextblockhash,omitempty"`

	Extra Extra `json:"-"`
}

type GetBlockVariant2 struct {
	Hash              string        `json:"hash"`
	Confirmations     int64         `json:"confirmations"`
	Size              int64         `json:"size"`
	StrippedSize      int64         `json:"strippedsize"`
	Weight            int64         `json:"weight"`
	Height            int64         `json:"height"`
	Version           int32         `json:"version"`
	VersionHex        string        `json:"versionHex"`
	MerkleRoot        string        `json:"merkleroot"`
	Tx                []Transaction `json:"tx"`
	Time              int64         `json:"time"`
	MedianTime        int64         `json:"mediantime"`
	Nonce             uint32        `json:"nonce"`
	Bits              string        `json:"bits"`
	Difficulty        float64       `json:"difficulty"`
	Chainwork         string        `json:"chainwork"`
	NTx               int64         `json:"nTx"`
	PreviousBlockHash string        `json:"previousblockhash,omitempty"`
	NextBlockHash     string        `json:"nextblockhash,omitempty"`

	Extra Extra `json:"-"`
}

// GetBlockVariant3 only requires the transaction list; the block header
// members are decoded when present.
type GetBlockVariant3 struct {
	Tx []GetBlockVariant3TxItem `json:"tx"`

	Hash              string  `json:"hash,omitempty"`
	Confirmations     *int64  `json:"confirmations,omitempty"`
	Size              int64   `json:"size,omitempty"`
	StrippedSize      int64   `json:"strippedsize,omitempty"`
	Weight            int64   `json:"weight,omitempty"`
	Height            *int64  `json:"height,omitempty"`
	Version           int32   `json:"version,omitempty"`
	VersionHex        string  `json:"versionHex,omitempty"`
	MerkleRoot        string  `json:"merkleroot,omitempty"`
	Time              int64   `json:"time,omitempty"`
	MedianTime        int64   `json:"mediantime,omitempty"`
	Nonce             *uint32 `json:"nonce,omitempty"`
	Bits              string  `json:"bits,omitempty"`
	Difficulty        float64 `json:"difficulty,omitempty"`
	Chainwork         string  `json:"chainwork,omitempty"`
	NTx               int64   `json:"nTx,omitempty"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	NextBlockHash     string  `json:"nextblockhash,omitempty"`

	Extra Extra `json:"-"`
}

// GetBlockVariant3TxItem is a block transaction whose inputs all carry the
// output they spend. The remaining transaction members land in Extra.
type GetBlockVariant3TxItem struct {
	Inputs []GetBlockVariant3TxItemInputsItem `json:"vin"`

	Extra Extra `json:"-"`
}

type GetBlockVariant3TxItemInputsItem struct {
	Prevout GetBlockVariant3TxItemInputsItemPrevout `json:"prevout"`

	Extra Extra `json:"-"`
}

// GetBlockVariant3TxItemInputsItemPrevout is the output spent by an input.
// Value is in BTC.
type GetBlockVariant3TxItemInputsItemPrevout struct {
	Generated    bool         `json:"generated"`
	Height       int64        `json:"height"`
	Value        float64      `json:"value"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`

	Extra Extra `json:"-"`
}

func (GetBlockVariant0) getBlock() {}
func (GetBlockVariant1) getBlock() {}
func (GetBlockVariant2) getBlock() {}
func (GetBlockVariant3) getBlock() {}

func (v *GetBlockVariant1) UnmarshalJSON(data []byte) error { return DecodeRecord(data, v, &v.Extra) }
func (v GetBlockVariant1) MarshalJSON() ([]byte, error)     { return EncodeRecord(v, v.Extra) }

func (v *GetBlockVariant2) UnmarshalJSON(data []byte) error { return DecodeRecord(data, v, &v.Extra) }
func (v GetBlockVariant2) MarshalJSON() ([]byte, error)     { return EncodeRecord(v, v.Extra) }

func (v *GetBlockVariant3) UnmarshalJSON(data []byte) error { return DecodeRecord(data, v, &v.Extra) }
func (v GetBlockVariant3) MarshalJSON() ([]byte, error)     { return EncodeRecord(v, v.Extra) }

func (v *GetBlockVariant3TxItem) UnmarshalJSON(data []byte) error {
	return DecodeRecord(data, v, &v.Extra)
}
func (v GetBlockVariant3TxItem) MarshalJSON() ([]byte, error) { return EncodeRecord(v, v.Extra) }

func (v *GetBlockVariant3TxItemInputsItem) UnmarshalJSON(data []byte) error {
	return DecodeRecord(data, v, &v.Extra)
}
func (v GetBlockVariant3TxItemInputsItem) MarshalJSON() ([]byte, error) {
	return EncodeRecord(v, v.Extra)
}

func (v *GetBlockVariant3TxItemInputsItemPrevout) UnmarshalJSON(data []byte) error {
	return DecodeRecord(data, v, &v.Extra)
}
func (v GetBlockVariant3TxItemInputsItemPrevout) MarshalJSON() ([]byte, error) {
	return EncodeRecord(v, v.Extra)
}

func (b *GetBlock) UnmarshalJSON(data []byte) error {
	v, err := DecodeVariant(data, "GetBlock",
		Variant[GetBlockVariant3, GetBlockVariant](),
		Variant[GetBlockVariant2, GetBlockVariant](),
		Variant[GetBlockVariant1, GetBlockVariant](),
		Variant[GetBlockVariant0, GetBlockVariant](),
	)
	if err != nil {
		return err
	}
	b.Value = v
	return nil
}

func (b GetBlock) MarshalJSON() ([]byte, error) {
	return marshalVariant(b.Value)
}

// GetBlockHeader is the result of getblockheader. Value holds
// GetBlockHeaderVariant0 (verbose=true, the default) or
// GetBlockHeaderVariant1 (verbose=false).
type GetBlockHeader struct {
	Value GetBlockHeaderVariant
}

type GetBlockHeaderVariant interface {
	getBlockHeader()
}

type GetBlockHeaderVariant0 struct {
	Hash              string  `json:"hash"`
	Confirmations     int64   `json:"confirmations"`
	Height            int64   `json:"height"`
	Version           int32   `json:"version"`
	VersionHex        string  `json:"versionHex"`
	MerkleRoot        string  `json:"merkleroot"`
	Time              int64   `json:"time"`
	MedianTime        int64   `json:"mediantime"`
	Nonce             uint32  `json:"nonce"`
	Bits              string  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
	Chainwork         string  `json:"chainwork"`
	NTx               int64   `json:"nTx"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	NextBlockHash     string  `json:"nextblockhash,omitempty"`

	Extra Extra `json:"-"`
}

// GetBlockHeaderVariant1 is the serialized, hex-encoded header.
type GetBlockHeaderVariant1 string

func (GetBlockHeaderVariant0) getBlockHeader() {}
func (GetBlockHeaderVariant1) getBlockHeader() {}

func (v *GetBlockHeaderVariant0) UnmarshalJSON(data []byte) error {
	return DecodeRecord(data, v, &v.Extra)
}
func (v GetBlockHeaderVariant0) MarshalJSON() ([]byte, error) { return EncodeRecord(v, v.Extra) }

func (h *GetBlockHeader) UnmarshalJSON(data []byte) error {
	v, err := DecodeVariant(data, "GetBlockHeader",
		Variant[GetBlockHeaderVariant0, GetBlockHeaderVariant](),
		Variant[GetBlockHeaderVariant1, GetBlockHeaderVariant](),
	)
	if err != nil {
		return err
	}
	h.Value = v
	return nil
}

func (h GetBlockHeader) MarshalJSON() ([]byte, error) {
	return marshalVariant(h.Value)
}
