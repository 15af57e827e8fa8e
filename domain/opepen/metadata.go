package opepen

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/opepen-graveyard/goapi/domain"
	"golang.org/x/xerrors"
)

// Attribute is one metadata trait. Value is either a string or a number.
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// ValueString renders Value the way it appears in metadata
func (a Attribute) ValueString() string {
	switch v := a.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

type EnvelopeId struct {
	TokenId domain.TokenId `json:"tokenId"`
}

type EnvelopeMedia struct {
	Gateway string `json:"gateway"`
	Raw     string `json:"raw"`
}

type EnvelopeMetadata struct {
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Attributes []Attribute `json:"attributes"`
}

// Envelope is one item of the metadata provider's batch answer.
// The raw item is kept so it can be served back verbatim.
type Envelope struct {
	Id       EnvelopeId       `json:"id"`
	Title    string           `json:"title"`
	Metadata EnvelopeMetadata `json:"metadata"`
	Media    []EnvelopeMedia  `json:"media"`

	raw json.RawMessage
}

type envelopeView Envelope

func (e *Envelope) UnmarshalJSON(b []byte) error {
	var v envelopeView
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = Envelope(v)
	e.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(envelopeView(e))
}

// TokenMetadata flattens the envelope for display
func (e Envelope) TokenMetadata(tokenId string) TokenMetadata {
	t := TokenMetadata{
		TokenId:    tokenId,
		Name:       e.Metadata.Name,
		Attributes: e.Metadata.Attributes,
	}
	if t.Name == "" {
		t.Name = "Opepen #" + tokenId
	}
	if len(e.Media) > 0 {
		t.Image = e.Media[0].Gateway
	}
	if t.Attributes == nil {
		t.Attributes = []Attribute{}
	}
	return t
}

type TokenMetadata struct {
	TokenId    string      `json:"tokenId"`
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute returns the first attribute with the given trait type
func (t TokenMetadata) Attribute(traitType string) (Attribute, bool) {
	for _, a := range t.Attributes {
		if a.TraitType == traitType {
			return a, true
		}
	}
	return Attribute{}, false
}

// MetadataSet maps token id to envelope and remembers insertion order,
// both in memory and on the wire.
type MetadataSet struct {
	ids   []string
	items map[string]Envelope
}

func NewMetadataSet() *MetadataSet {
	return &MetadataSet{items: map[string]Envelope{}}
}

// Put stores e under id. Re-putting an id replaces the value and keeps its position.
func (s *MetadataSet) Put(id string, e Envelope) {
	if s.items == nil {
		s.items = map[string]Envelope{}
	}
	if _, ok := s.items[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.items[id] = e
}

func (s *MetadataSet) Get(id string) (Envelope, bool) {
	e, ok := s.items[id]
	return e, ok
}

func (s *MetadataSet) Ids() []string {
	return append([]string(nil), s.ids...)
}

func (s *MetadataSet) Len() int {
	return len(s.ids)
}

// Tokens flattens every envelope in insertion order
func (s *MetadataSet) Tokens() []TokenMetadata {
	tokens := make([]TokenMetadata, 0, len(s.ids))
	for _, id := range s.ids {
		tokens = append(tokens, s.items[id].TokenMetadata(id))
	}
	return tokens
}

func (s *MetadataSet) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, id := range s.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.items[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *MetadataSet) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return xerrors.Errorf("metadata set: expected object, got %v", tok)
	}
	set := NewMetadataSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return xerrors.Errorf("metadata set: unexpected key %v", tok)
		}
		var e Envelope
		if err := dec.Decode(&e); err != nil {
			return xerrors.Errorf("metadata set: token %s: %w", id, err)
		}
		set.Put(id, e)
	}
	*s = *set
	return nil
}
