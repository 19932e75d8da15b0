package types

// ScriptPubKey as returned inside decoded transaction outputs and prevouts.
type ScriptPubKey struct {
	Asm     string `json:"asm"`
	Desc    string `json:"desc"`
	Hex     string `json:"hex"`
	Address string `json:"address,omitempty"`
	Type    string `json:"type"`

	Extra Extra `json:"-"`
}

func (s *ScriptPubKey) UnmarshalJSON(data []byte) error { return DecodeRecord(data, s, &s.Extra) }
func (s ScriptPubKey) MarshalJSON() ([]byte, error)     { return EncodeRecord(s, s.Extra) }

type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`

	Extra Extra `json:"-"`
}

func (s *ScriptSig) UnmarshalJSON(data []byte) error { return DecodeRecord(data, s, &s.Extra) }
func (s ScriptSig) MarshalJSON() ([]byte, error)     { return EncodeRecord(s, s.Extra) }

// TxIn is a decoded transaction input. Coinbase inputs carry Coinbase
// instead of Txid, Vout and ScriptSig.
type TxIn struct {
	Txid        string     `json:"txid,omitempty"`
	Vout        *uint32    `json:"vout,omitempty"`
	Coinbase    string     `json:"coinbase,omitempty"`
	ScriptSig   *ScriptSig `json:"scriptSig,omitempty"`
	TxInWitness []string   `json:"txinwitness,omitempty"`
	Sequence    uint32     `json:"sequence"`

	Extra Extra `json:"-"`
}

func (t *TxIn) UnmarshalJSON(data []byte) error { return DecodeRecord(data, t, &t.Extra) }
func (t TxIn) MarshalJSON() ([]byte, error)     { return EncodeRecord(t, t.Extra) }

// TxOut is a decoded transaction output. Value is in BTC.
type TxOut struct {
	Value        float64      `json:"value"`
	N            uint32       `json:"n"`
	ScriptPubKey ScriptPubKey `json:"scriptPubKey"`

	Extra Extra `json:"-"`
}

func (t *TxOut) UnmarshalJSON(data []byte) error { return DecodeRecord(data, t, &t.Extra) }
func (t TxOut) MarshalJSON() ([]byte, error)     { return EncodeRecord(t, t.Extra) }

// Transaction is a decoded transaction as embedded in blocks.
type Transaction struct {
	Txid     string  `json:"txid"`
	Hash     string  `json:"hash"`
	Version  int32   `json:"version"`
	Size     int64   `json:"size"`
	Vsize    int64   `json:"vsize"`
	Weight   int64   `json:"weight"`
	Locktime uint32  `json:"locktime"`
	Vin      []TxIn  `json:"vin"`
	Vout     []TxOut `json:"vout"`
	Hex      string  `json:"hex,omitempty"`
	// Fee is only present when undo data is available.
	Fee *float64 `json:"fee,omitempty"`

	Extra Extra `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error { return DecodeRecord(data, t, &t.Extra) }
func (t Transaction) MarshalJSON() ([]byte, error)     { return EncodeRecord(t, t.Extra) }

// GetRawTransaction is the result of getrawtransaction. Value is one of
// GetRawTransactionVariant0 (verbose=false) or GetRawTransactionVariant1.
type GetRawTransaction struct {
	Value GetRawTransactionVariant
}

type GetRawTransactionVariant interface {
	getRawTransaction()
}

// GetRawTransactionVariant0 is the serialized, hex-encoded transaction.
type GetRawTransactionVariant0 string

// GetRawTransactionVariant1 is the decoded transaction with its chain
// position, when known.
type GetRawTransactionVariant1 struct {
	InActiveChain *bool   `json:"in_active_chain,omitempty"`
	Txid          string  `json:"txid"`
	Hash          string  `json:"hash"`
	Version       int32   `json:"version"`
	Size          int64   `json:"size"`
	Vsize         int64   `json:"vsize"`
	Weight        int64   `json:"weight"`
	Locktime      uint32  `json:"locktime"`
	Vin           []TxIn  `json:"vin"`
	Vout          []TxOut `json:"vout"`
	Hex           string  `json:"hex"`
	Blockhash     string  `json:"blockhash,omitempty"`
	Confirmations *int64  `json:"confirmations,omitempty"`
	Time          *int64  `json:"time,omitempty"`
	Blocktime     *int64  `json:"blocktime,omitempty"`

	Extra Extra `json:"-"`
}

func (GetRawTransactionVariant0) getRawTransaction() {}
func (GetRawTransactionVariant1) getRawTransaction() {}

func (v *GetRawTransactionVariant1) UnmarshalJSON(data []byte) error {
	return DecodeRecord(data, v, &v.Extra)
}
func (v GetRawTransactionVariant1) MarshalJSON() ([]byte, error) { return EncodeRecord(v, v.Extra) }

func (r *GetRawTransaction) UnmarshalJSON(data []byte) error {
	v, err := DecodeVariant(data, "GetRawTransaction",
		Variant[GetRawTransactionVariant1, GetRawTransactionVariant](),
		Variant[GetRawTransactionVariant0, GetRawTransactionVariant](),
	)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r GetRawTransaction) MarshalJSON() ([]byte, error) {
	return marshalVariant(r.Value)
}
