package constants

import (
	"strconv"

	"github.com/hance08/otusbank/internal/model"
)

const (
	MaxNumberLen = 34
)

var TypeNames = map[int]string{
	model.TypeChecking:   "Checking",
	model.TypeCommission: "Commission",
}

// TypeName returns the display name of an account type, or its number when
// it has none.
func TypeName(t int) string {
	if name, ok := TypeNames[t]; ok {
		return name
	}
	return "Type " + strconv.Itoa(t)
}
