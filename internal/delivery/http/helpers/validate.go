package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Validator is implemented by every request DTO. Validate returns the
// messages for each violated rule; empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest, rejecting unknown
// fields, then runs its validation. On decode or validation failure it
// writes a 400 JSON error and returns false; callers return immediately
// in that case.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest Validator) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if errs := dest.Validate(); len(errs) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
		return false
	}
	return true
}
