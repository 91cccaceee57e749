package qiwi

type IdentificationLevel string

const (
	LevelAnonymous IdentificationLevel = "ANONYMOUS"
	LevelSimple    IdentificationLevel = "SIMPLE"
	LevelVerified  IdentificationLevel = "VERIFIED"
	LevelFull      IdentificationLevel = "FULL"
)

// Identity is the result of an identification request.
type Identity struct {
	ID         *int64
	Type       IdentificationLevel
	BirthDate  *string
	FirstName  *string
	MiddleName *string
	LastName   *string
	Passport   *string
	INN        *string
	Snils      *string
	Oms        *string

	// SubmittedINN is the tax id sent with the request, as opposed to INN
	// echoed by the service.
	SubmittedINN string
}

// Verified reports whether identification passed.
//
// The comparison is kept as the service client historically did it: the
// echoed INN must differ from the submitted one. This looks inverted and is
// pending confirmation.
func (i *Identity) Verified() bool {
	echoed := ""
	if i.INN != nil {
		echoed = *i.INN
	}
	return i.Type == LevelVerified && i.SubmittedINN != echoed
}

func IdentityFromJSON(in RawInput) (*Identity, error) {
	o, err := in.object("Identity")
	if err != nil {
		return nil, err
	}

	var id Identity
	if id.ID, err = o.optInt("id"); err != nil {
		return nil, err
	}
	typ, err := o.optStr("type")
	if err != nil {
		return nil, err
	}
	if typ != nil {
		id.Type = IdentificationLevel(*typ)
	}
	for _, f := range []struct {
		key string
		dst **string
	}{
		{"birthDate", &id.BirthDate},
		{"firstName", &id.FirstName},
		{"middleName", &id.MiddleName},
		{"lastName", &id.LastName},
		{"passport", &id.Passport},
		{"inn", &id.INN},
		{"snils", &id.Snils},
		{"oms", &id.Oms},
	} {
		if *f.dst, err = o.optStr(f.key); err != nil {
			return nil, err
		}
	}
	return &id, nil
}
