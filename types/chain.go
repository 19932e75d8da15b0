package types

import "encoding/json"

type GetBlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Bits                 string  `json:"bits,omitempty"`
	Target               string  `json:"target,omitempty"`
	Difficulty           float64 `json:"difficulty"`
	Time                 *int64  `json:"time,omitempty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	Chainwork            string  `json:"chainwork"`
	SizeOnDisk           int64   `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
	PruneHeight          *int64  `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool   `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *int64  `json:"prune_target_size,omitempty"`
	// Warnings is a string on older nodes and a list of strings on newer ones.
	Warnings json.RawMessage `json:"warnings"`

	Extra Extra `json:"-"`
}

func (i *GetBlockchainInfo) UnmarshalJSON(data []byte) error { return DecodeRecord(data, i, &i.Extra) }
func (i GetBlockchainInfo) MarshalJSON() ([]byte, error)     { return EncodeRecord(i, i.Extra) }

// GetMempoolInfo fee rates are in BTC/kvB.
type GetMempoolInfo struct {
	Loaded              bool    `json:"loaded"`
	Size                int64   `json:"size"`
	Bytes               int64   `json:"bytes"`
	Usage               int64   `json:"usage"`
	TotalFee            float64 `json:"total_fee"`
	MaxMempool          int64   `json:"maxmempool"`
	MempoolMinFee       float64 `json:"mempoolminfee"`
	MinRelayTxFee       float64 `json:"minrelaytxfee"`
	IncrementalRelayFee float64 `json:"incrementalrelayfee"`
	UnbroadcastCount    int64   `json:"unbroadcastcount"`
	FullRBF             *bool   `json:"fullrbf,omitempty"`

	Extra Extra `json:"-"`
}

func (i *GetMempoolInfo) UnmarshalJSON(data []byte) error { return DecodeRecord(data, i, &i.Extra) }
func (i GetMempoolInfo) MarshalJSON() ([]byte, error)     { return EncodeRecord(i, i.Extra) }

// EstimateSmartFee carries either FeeRate (BTC/kvB) or Errors.
type EstimateSmartFee struct {
	FeeRate *float64 `json:"feerate,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Blocks  int64    `json:"blocks"`

	Extra Extra `json:"-"`
}

func (e *EstimateSmartFee) UnmarshalJSON(data []byte) error { return DecodeRecord(data, e, &e.Extra) }
func (e EstimateSmartFee) MarshalJSON() ([]byte, error)     { return EncodeRecord(e, e.Extra) }
