// Package upload models the image payload a form field may carry: a freshly
// picked file, a URL already living on the asset service, or nothing.
package upload

type Kind int

const (
	KindAbsent Kind = iota
	KindNewFile
	KindExistingURL
)

type Payload struct {
	kind Kind
	name string
	data []byte
	url  string
}

func NewFile(name string, data []byte) Payload {
	return Payload{kind: KindNewFile, name: name, data: data}
}

func ExistingURL(url string) Payload {
	return Payload{kind: KindExistingURL, url: url}
}

func Absent() Payload {
	return Payload{kind: KindAbsent}
}

func (p Payload) Kind() Kind   { return p.kind }
func (p Payload) Name() string { return p.name }
func (p Payload) Data() []byte { return p.data }
func (p Payload) URL() string  { return p.url }

// Pending reports whether the payload still needs an upload round-trip.
func (p Payload) Pending() bool { return p.kind == KindNewFile }

func (p Payload) IsZero() bool { return p.kind == KindAbsent }
