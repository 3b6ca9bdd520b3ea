package decimal

// MarshalText implements encoding.TextMarshaler. It uses the raw 'R' form,
// which UnmarshalText reverses exactly.
func (x Decimal) MarshalText() ([]byte, error) {
	return x.Append(nil, 'R', -1), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts any form
// accepted by Parse.
func (x *Decimal) UnmarshalText(b []byte) error {
	d, err := Parse(string(b))
	if err != nil {
		return err
	}
	*x = d
	return nil
}
