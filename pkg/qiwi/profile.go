package qiwi

import (
	"time"
)

// Profile is a snapshot of the wallet owner's profile. Each part is nil when
// it was not requested.
type Profile struct {
	AuthInfo     *AuthInfo
	ContractInfo *ContractInfo
	UserInfo     *UserInfo
}

type AuthInfo struct {
	PersonID         int64
	BoundEmail       *string
	IP               *string
	LastLoginDate    *time.Time
	MobilePinInfo    *MobilePinInfo
	PassInfo         *PassInfo
	PinInfo          *PinInfo
	RegistrationDate *time.Time
}

type MobilePinInfo struct {
	MobilePinUsed       bool
	LastMobilePinChange *time.Time
	NextMobilePinChange *time.Time
}

type PassInfo struct {
	PasswordUsed   bool
	LastPassChange *time.Time
	NextPassChange *time.Time
}

type PinInfo struct {
	PinUsed bool
}

type ContractInfo struct {
	Blocked            bool
	ContractID         int64
	CreationDate       *time.Time
	Features           any
	IdentificationInfo []IdentificationInfo
}

type IdentificationInfo struct {
	BankAlias           string
	IdentificationLevel IdentificationLevel
}

// UserInfo is mostly service information, so every field is optional.
type UserInfo struct {
	DefaultPayCurrency *int64
	DefaultPaySource   any
	Email              *string
	FirstTxnID         *int64
	Language           any
	Operator           *string
	PhoneHash          any
	PromoEnabled       any
}

func ProfileFromJSON(in RawInput) (*Profile, error) {
	o, err := in.object("Profile")
	if err != nil {
		return nil, err
	}

	var p Profile
	if a, ok, err := o.optObj("authInfo"); err != nil {
		return nil, err
	} else if ok {
		if p.AuthInfo, err = parseAuthInfo(a.as("AuthInfo")); err != nil {
			return nil, err
		}
	}
	if c, ok, err := o.optObj("contractInfo"); err != nil {
		return nil, err
	} else if ok {
		if p.ContractInfo, err = parseContractInfo(c.as("ContractInfo")); err != nil {
			return nil, err
		}
	}
	if u, ok, err := o.optObj("userInfo"); err != nil {
		return nil, err
	} else if ok {
		if p.UserInfo, err = parseUserInfo(u.as("UserInfo")); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func parseAuthInfo(o object) (*AuthInfo, error) {
	var (
		a   AuthInfo
		err error
	)
	if a.PersonID, err = o.integer("personId"); err != nil {
		return nil, err
	}
	if a.BoundEmail, err = o.optStr("boundEmail"); err != nil {
		return nil, err
	}
	if a.IP, err = o.optStr("ip"); err != nil {
		return nil, err
	}
	if a.LastLoginDate, err = o.optTime("lastLoginDate"); err != nil {
		return nil, err
	}
	if a.RegistrationDate, err = o.optTime("registrationDate"); err != nil {
		return nil, err
	}

	if m, ok, err := o.optObj("mobilePinInfo"); err != nil {
		return nil, err
	} else if ok {
		m = m.as("MobilePinInfo")
		info := &MobilePinInfo{}
		if info.MobilePinUsed, err = m.boolean("mobilePinUsed"); err != nil {
			return nil, err
		}
		if info.MobilePinUsed {
			if info.LastMobilePinChange, err = m.optTime("lastMobilePinChange"); err != nil {
				return nil, err
			}
			if info.NextMobilePinChange, err = m.optTime("nextMobilePinChange"); err != nil {
				return nil, err
			}
		}
		a.MobilePinInfo = info
	}

	if p, ok, err := o.optObj("passInfo"); err != nil {
		return nil, err
	} else if ok {
		p = p.as("PassInfo")
		info := &PassInfo{}
		if info.PasswordUsed, err = p.boolean("passwordUsed"); err != nil {
			return nil, err
		}
		if info.PasswordUsed {
			if info.LastPassChange, err = p.optTime("lastPassChange"); err != nil {
				return nil, err
			}
			if info.NextPassChange, err = p.optTime("nextPassChange"); err != nil {
				return nil, err
			}
		}
		a.PassInfo = info
	}

	if p, ok, err := o.optObj("pinInfo"); err != nil {
		return nil, err
	} else if ok {
		used, err := p.as("PinInfo").boolean("pinUsed")
		if err != nil {
			return nil, err
		}
		a.PinInfo = &PinInfo{PinUsed: used}
	}
	return &a, nil
}

func parseContractInfo(o object) (*ContractInfo, error) {
	var (
		c   ContractInfo
		err error
	)
	if c.Blocked, err = o.boolean("blocked"); err != nil {
		return nil, err
	}
	if c.ContractID, err = o.integer("contractId"); err != nil {
		return nil, err
	}
	if c.CreationDate, err = o.optTime("creationDate"); err != nil {
		return nil, err
	}
	c.Features = o.service("features")

	if _, ok := o.lookup("identificationInfo"); ok {
		items, err := o.objects("identificationInfo", "IdentificationInfo")
		if err != nil {
			return nil, err
		}
		c.IdentificationInfo = make([]IdentificationInfo, 0, len(items))
		for _, item := range items {
			alias, err := item.str("bankAlias")
			if err != nil {
				return nil, err
			}
			level, err := item.str("identificationLevel")
			if err != nil {
				return nil, err
			}
			c.IdentificationInfo = append(c.IdentificationInfo, IdentificationInfo{
				BankAlias:           alias,
				IdentificationLevel: IdentificationLevel(level),
			})
		}
	}
	return &c, nil
}

func parseUserInfo(o object) (*UserInfo, error) {
	var (
		u   UserInfo
		err error
	)
	if u.DefaultPayCurrency, err = o.optInt("defaultPayCurrency"); err != nil {
		return nil, err
	}
	if u.Email, err = o.optStr("email"); err != nil {
		return nil, err
	}
	if u.FirstTxnID, err = o.optInt("firstTxnId"); err != nil {
		return nil, err
	}
	if u.Operator, err = o.optStr("operator"); err != nil {
		return nil, err
	}
	u.DefaultPaySource = o.service("defaultPaySource")
	u.Language = o.service("language")
	u.PhoneHash = o.service("phoneHash")
	u.PromoEnabled = o.service("promoEnabled")
	return &u, nil
}
