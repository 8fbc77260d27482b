package weblayer

import "encoding/json"

// Encoder serialises a structured value for the normaliser's JSON
// fallback path.
type Encoder func(v any) ([]byte, error)

// Normaliser converts a handler method's Result into a well-formed
// Response, mutating the held buffer for every variant except Delegate.
type Normaliser struct {
	buf    *Buffer
	encode Encoder
}

// NewNormaliser creates a Normaliser around the request's response
// buffer. A nil encoder defaults to encoding/json.
func NewNormaliser(buf *Buffer, encode Encoder) *Normaliser {
	if encode == nil {
		encode = json.Marshal
	}
	return &Normaliser{buf: buf, encode: encode}
}

// Normalise applies the result to the buffer and returns the terminal
// response. First match wins:
//
//  1. Delegate: returned verbatim; the buffer is bypassed entirely.
//  2. Raw: assigned as the buffer's literal body.
//  3. Text: assigned as the buffer's textual body.
//  4. nil: the buffer is returned untouched.
//  5. JSON: the JSON content type is set and the encoded value becomes
//     the body.
//
// The only possible error is a failed JSON encode, which is a handler
// programming error, not request data.
func (n *Normaliser) Normalise(res Result) (Response, error) {
	switch v := res.(type) {
	case delegateResult:
		return delegateResponse{handler: v.handler}, nil
	case rawResult:
		n.buf.SetRawBody(v.body)
	case textResult:
		n.buf.SetTextBody(v.body)
	case nil:
		// Handler mutated the buffer directly, or an error outcome
		// already shaped it.
	case jsonResult:
		encoded, err := n.encode(v.value)
		if err != nil {
			return nil, err
		}
		n.buf.Header().Set("Content-Type", JSONContentType)
		n.buf.SetRawBody(encoded)
	}
	return n.buf, nil
}
