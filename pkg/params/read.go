// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

// ReadValue requires a value and converts it with parse. A parse error is
// returned as an InvalidValueError (or InvalidParameterValueError) that
// wraps it.
func ReadValue[T any](r *Reader, parse func(string) (T, error), desc *TypeDescription) (T, error) {
	var zero T
	t, err := r.RequireValue(nil, desc)
	if err != nil {
		return zero, err
	}
	v, err := parse(t.Text)
	if err != nil {
		return zero, r.invalid(t, desc, err)
	}
	return v, nil
}

// ReadValueOr is like ReadValue but returns def when there is no value at
// the cursor. Parse errors are still returned.
func ReadValueOr[T any](r *Reader, parse func(string) (T, error), def T, desc *TypeDescription) (T, error) {
	t, ok := r.MatchValue(nil)
	if !ok {
		return def, nil
	}
	v, err := parse(t.Text)
	if err != nil {
		var zero T
		return zero, r.invalid(t, desc, err)
	}
	return v, nil
}

// ReadString requires a value matching v and returns its text.
func ReadString(r *Reader, v *ValuePredicate) (string, error) {
	t, err := r.RequireValue(v, nil)
	if err != nil {
		return "", err
	}
	return t.Text, nil
}

// ReadStringOr returns the text of the value at the cursor if v matches
// it, or def.
func ReadStringOr(r *Reader, def string, v *ValuePredicate) string {
	if t, ok := r.MatchValue(v); ok {
		return t.Text
	}
	return def
}

// MatchLiteral consumes the value at the cursor if it equals value.
func MatchLiteral(r *Reader, value string) bool {
	_, ok := r.MatchValue(Value(value))
	return ok
}

// ReadSwitch reports whether the parameter n was given, consuming it. A
// value attached to it is an error.
func ReadSwitch(r *Reader, n NamePredicate) (bool, error) {
	if _, ok := r.MatchParameter(n); !ok {
		return false, nil
	}
	return true, r.EndParameter()
}

// ReadParameterValue requires the parameter n followed by a value
// matching v.
func ReadParameterValue(r *Reader, n NamePredicate, v *ValuePredicate) (string, error) {
	if _, err := r.RequireParameter(n); err != nil {
		return "", err
	}
	return endWithValue(r, v)
}

// ReadOptionalParameterValue is like ReadParameterValue but returns def if
// the parameter is absent.
func ReadOptionalParameterValue(r *Reader, n NamePredicate, def string, v *ValuePredicate) (string, error) {
	if _, ok := r.MatchParameter(n); !ok {
		return def, nil
	}
	return endWithValue(r, v)
}

func endWithValue(r *Reader, v *ValuePredicate) (string, error) {
	t, err := r.RequireValue(v, nil)
	if err != nil {
		r.closeParameter()
		return "", err
	}
	return t.Text, r.EndParameter()
}

// ReadParameter requires the parameter n and converts its value with
// parse.
func ReadParameter[T any](r *Reader, n NamePredicate, parse func(string) (T, error), desc *TypeDescription) (T, error) {
	if _, err := r.RequireParameter(n); err != nil {
		var zero T
		return zero, err
	}
	return endWithParsed(r, parse, desc)
}

// ReadOptionalParameter is like ReadParameter but returns def if the
// parameter is absent.
func ReadOptionalParameter[T any](r *Reader, n NamePredicate, parse func(string) (T, error), def T, desc *TypeDescription) (T, error) {
	if _, ok := r.MatchParameter(n); !ok {
		return def, nil
	}
	return endWithParsed(r, parse, desc)
}

func endWithParsed[T any](r *Reader, parse func(string) (T, error), desc *TypeDescription) (T, error) {
	v, err := ReadValue(r, parse, desc)
	if err != nil {
		r.closeParameter()
		var zero T
		return zero, err
	}
	return v, r.EndParameter()
}
