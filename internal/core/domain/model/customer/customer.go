package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"caramelt/internal/core/domain/model/kernel"
	"caramelt/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

const (
	minFullNameLength = 2
	minPhoneDigits    = 10
)

// Customer holds the contact details collected at checkout. Customers are
// matched by (email, phone) at checkout time: a returning pair updates the
// existing record instead of creating a duplicate.
type Customer struct {
	id        kernel.UUID
	fullName  string
	email     string
	phone     string
	whatsapp  *string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer from checkout contact fields.
func NewCustomer(id kernel.UUID, fullName, email, phone string, whatsapp *string) (*Customer, error) {
	now := time.Now().UTC()
	c := &Customer{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(fullName),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.whatsapp = whatsapp
	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, fullName, email, phone string, whatsapp *string, createdAt, updatedAt time.Time) (*Customer, error) {
	c, err := NewCustomer(id, fullName, email, phone, whatsapp)
	if err != nil {
		return nil, err
	}

	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the instance was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID      { return c.id }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Whatsapp() *string    { return c.whatsapp }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// EmailMatches compares emails case-insensitively, as the tracking lookup
// requires.
func (c *Customer) EmailMatches(email string) bool {
	return strings.EqualFold(c.email, email)
}

// RefreshContact updates the mutable checkout fields when a returning
// (email, phone) pair checks out again.
func (c *Customer) RefreshContact(fullName string, whatsapp *string) error {
	if err := c.setFullName(fullName); err != nil {
		return err
	}
	c.whatsapp = whatsapp
	c.updatedAt = time.Now().UTC()
	return nil
}

// UpdateDetails applies an admin-side partial edit. Nil fields are left
// unchanged; whatsapp uses a double pointer so nil can mean "clear".
func (c *Customer) UpdateDetails(fullName, email, phone *string, whatsapp **string) error {
	if fullName != nil {
		if err := c.setFullName(*fullName); err != nil {
			return err
		}
	}
	if email != nil {
		if err := c.setEmail(*email); err != nil {
			return err
		}
	}
	if phone != nil {
		if err := c.setPhone(*phone); err != nil {
			return err
		}
	}
	if whatsapp != nil {
		c.whatsapp = *whatsapp
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName string) error {
	if len(strings.TrimSpace(fullName)) < minFullNameLength {
		return errs.NewValueIsInvalidErrorWithCause("fullName",
			fmt.Errorf("must be at least %d characters", minFullNameLength))
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < minPhoneDigits {
		return errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("must contain at least %d digits", minPhoneDigits))
	}
	c.phone = phone
	return nil
}
