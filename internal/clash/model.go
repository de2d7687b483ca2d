// Package clash models proxy nodes of the Clash configuration schema.
//
// Optional fields are pointers; nil means the key was absent and it is
// omitted again on output. Records compare with reflect.DeepEqual.
package clash

type SSNode struct {
	Name       string  `yaml:"name" json:"name"`
	Server     string  `yaml:"server" json:"server"`
	Port       uint16  `yaml:"port" json:"port"`
	Password   string  `yaml:"password" json:"password"`
	Cipher     string  `yaml:"cipher" json:"cipher"`
	UDP        *bool   `yaml:"udp,omitempty" json:"udp,omitempty"`
	Plugin     *string `yaml:"plugin,omitempty" json:"plugin,omitempty"`
	PluginOpts *string `yaml:"plugin-opts,omitempty" json:"plugin-opts,omitempty"`
}

// SSRNode is a ShadowsocksR node. It is not a member of the Proxy union
// and is decoded directly.
type SSRNode struct {
	Name          string  `yaml:"name" json:"name"`
	Server        string  `yaml:"server" json:"server"`
	Port          uint16  `yaml:"port" json:"port"`
	Password      string  `yaml:"password" json:"password"`
	Cipher        string  `yaml:"cipher" json:"cipher"`
	Obfs          string  `yaml:"obfs" json:"obfs"`
	Protocol      string  `yaml:"protocol" json:"protocol"`
	ObfsParam     *string `yaml:"obfs-param,omitempty" json:"obfs-param,omitempty"`
	ProtocolParam *string `yaml:"protocol-param,omitempty" json:"protocol-param,omitempty"`
	UDP           *bool   `yaml:"udp,omitempty" json:"udp,omitempty"`
}

type TUICNode struct {
	Name                 string  `yaml:"name" json:"name"`
	Server               string  `yaml:"server" json:"server"`
	Port                 uint16  `yaml:"port" json:"port"`
	Password             string  `yaml:"password" json:"password"`
	UUID                 string  `yaml:"uuid" json:"uuid"`
	SNI                  *string `yaml:"sni,omitempty" json:"sni,omitempty"`
	CongestionController *string `yaml:"congestion-controller,omitempty" json:"congestion-controller,omitempty"`
	ReduceRTT            *bool   `yaml:"reduce_rtt,omitempty" json:"reduce_rtt,omitempty"`
}

type VMessNode struct {
	Name           string       `yaml:"name" json:"name"`
	Server         string       `yaml:"server" json:"server"`
	Port           uint16       `yaml:"port" json:"port"`
	UUID           string       `yaml:"uuid" json:"uuid"`
	AlterID        uint16       `yaml:"alterId" json:"alterId"`
	Cipher         string       `yaml:"cipher" json:"cipher"`
	UDP            *bool        `yaml:"udp,omitempty" json:"udp,omitempty"`
	TLS            *string      `yaml:"tls,omitempty" json:"tls,omitempty"`
	SkipCertVerify *bool        `yaml:"skip-cert-verify,omitempty" json:"skip-cert-verify,omitempty"`
	ServerName     *string      `yaml:"servername,omitempty" json:"servername,omitempty"`
	Network        *string      `yaml:"network,omitempty" json:"network,omitempty"`
	WSOpts         *WSOptions   `yaml:"ws-opts,omitempty" json:"ws-opts,omitempty"`
	HTTPOpts       *HTTPOptions `yaml:"http-opts,omitempty" json:"http-opts,omitempty"`

	// Kept as opaque text; not structurally decoded.
	H2Opts   *string `yaml:"h2-opts,omitempty" json:"h2-opts,omitempty"`
	QUICOpts *string `yaml:"quic-opts,omitempty" json:"quic-opts,omitempty"`
	GRPCOpts *string `yaml:"grpc-opts,omitempty" json:"grpc-opts,omitempty"`
}

type WSOptions struct {
	Path                string            `yaml:"path" json:"path"`
	Headers             map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	MaxEarlyData        *uint64           `yaml:"max-early-data,omitempty" json:"max-early-data,omitempty"`
	EarlyDataHeaderName *string           `yaml:"early-data-header-name,omitempty" json:"early-data-header-name,omitempty"`
}

type HTTPOptions struct {
	Method  string            `yaml:"method" json:"method"`
	Path    []string          `yaml:"path" json:"path"`
	Headers map[string]string `yaml:"headers" json:"headers"`
}

// normalize folds empty path and header sets to nil.
func (o *HTTPOptions) normalize() {
	if len(o.Path) == 0 {
		o.Path = nil
	}
	if len(o.Headers) == 0 {
		o.Headers = nil
	}
}

// H2Options describes the h2 transport block. VMessNode keeps h2-opts
// opaque, so this record is only decoded when a caller asks for it.
type H2Options struct {
	Path    string            `yaml:"path" json:"path"`
	Host    string            `yaml:"host" json:"host"`
	Headers map[string]string `yaml:"headers" json:"headers"`
}

func (o *H2Options) normalize() {
	if len(o.Headers) == 0 {
		o.Headers = nil
	}
}
