package calcerrors

// local interface to be used with errors.Unwrap().
// errors packake does not define separate interface, relies on reflection instead.
type unwrapInterface interface {
	Unwrap() error
}

// kindedError is implemented by every positioned error of the pipeline.
type kindedError interface {
	error
	Kind() Kind
	Position() (line, column int)
}
