package weberr

import "errors"

// Opt decorates an error with extra behavior picked up by the error
// middleware.
type Opt func(error) error

func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

// WithResponse attaches the body and status the client should see.
func WithResponse(body interface{}, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

// WithFields attaches structured fields carried into the error log.
func WithFields(fields map[string]interface{}) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}

type responseError struct {
	error
	body   interface{}
	status int
}

func (e *responseError) Response() (interface{}, int) { return e.body, e.status }

func (e *responseError) Unwrap() error { return e.error }

type fieldsError struct {
	error
	fields map[string]interface{}
}

func (e *fieldsError) Fields() map[string]interface{} { return e.fields }

func (e *fieldsError) Unwrap() error { return e.error }

// Response digs through the chain for a decorated client response.
func Response(err error) (body interface{}, status int, ok bool) {
	var re interface {
		Response() (interface{}, int)
	}
	if errors.As(err, &re) {
		body, status = re.Response()
		return body, status, true
	}
	return nil, 0, false
}

// Fields digs through the chain for decorated log fields.
func Fields(err error) (map[string]interface{}, bool) {
	var fe interface {
		Fields() map[string]interface{}
	}
	if errors.As(err, &fe) {
		return fe.Fields(), true
	}
	return nil, false
}
