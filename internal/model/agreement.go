package model

// Agreement is a customer contract owning zero or more accounts. Only its
// identifier is known here.
type Agreement struct {
	ID int64
}
