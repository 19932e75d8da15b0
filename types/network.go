package types

import "encoding/json"

type GetNetworkInfo struct {
	Version            int64          `json:"version"`
	Subversion         string         `json:"subversion"`
	ProtocolVersion    int64          `json:"protocolversion"`
	LocalServices      string         `json:"localservices"`
	LocalServicesNames []string       `json:"localservicesnames"`
	LocalRelay         bool           `json:"localrelay"`
	TimeOffset         int64          `json:"timeoffset"`
	Connections        int64          `json:"connections"`
	ConnectionsIn      int64          `json:"connections_in"`
	ConnectionsOut     int64          `json:"connections_out"`
	NetworkActive      bool           `json:"networkactive"`
	Networks           []Network      `json:"networks"`
	RelayFee           float64        `json:"relayfee"`
	IncrementalFee     float64        `json:"incrementalfee"`
	LocalAddresses     []LocalAddress `json:"localaddresses"`
	// Warnings is a string on older nodes and a list of strings on newer ones.
	Warnings json.RawMessage `json:"warnings"`

	Extra Extra `json:"-"`
}

func (i *GetNetworkInfo) UnmarshalJSON(data []byte) error { return DecodeRecord(data, i, &i.Extra) }
func (i GetNetworkInfo) MarshalJSON() ([]byte, error)     { return EncodeRecord(i, i.Extra) }

type Network struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`

	Extra Extra `json:"-"`
}

func (n *Network) UnmarshalJSON(data []byte) error { return DecodeRecord(data, n, &n.Extra) }
func (n Network) MarshalJSON() ([]byte, error)     { return EncodeRecord(n, n.Extra) }

type LocalAddress struct {
	Address string `json:"address"`
	Port    uint16 `json:"port"`
	Score   int64  `json:"score"`

	Extra Extra `json:"-"`
}

func (a *LocalAddress) UnmarshalJSON(data []byte) error { return DecodeRecord(data, a, &a.Extra) }
func (a LocalAddress) MarshalJSON() ([]byte, error)     { return EncodeRecord(a, a.Extra) }
