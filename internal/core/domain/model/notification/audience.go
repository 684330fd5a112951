package notification

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// AudienceKind identifies one of the three addressable recipient classes.
type AudienceKind int

const (
	// AudienceUnknown represents an invalid or undefined audience kind.
	AudienceUnknown AudienceKind = iota

	// AudienceAdmin is the shared back-office collective. It has no member id.
	AudienceAdmin

	// AudienceDeliveryPerson addresses a specific delivery person.
	AudienceDeliveryPerson

	// AudienceCustomer addresses a specific customer.
	AudienceCustomer
)

// getAudienceKindKeys returns the wire/storage key for every kind.
func getAudienceKindKeys() map[AudienceKind]string {
	return map[AudienceKind]string{
		AudienceUnknown:        "unknown",
		AudienceAdmin:          "admin",
		AudienceDeliveryPerson: "delivery",
		AudienceCustomer:       "customer",
	}
}

// AudienceKindFromKey parses a wire/storage key into an AudienceKind.
func AudienceKindFromKey(key string) (AudienceKind, error) {
	switch key {
	case "admin":
		return AudienceAdmin, nil
	case "delivery":
		return AudienceDeliveryPerson, nil
	case "customer":
		return AudienceCustomer, nil
	default:
		return AudienceUnknown, errs.NewValueIsInvalidErrorWithCause(
			"audience kind is invalid",
			fmt.Errorf("%q is not a valid audience kind", key),
		)
	}
}

// Key returns the wire/storage key of the kind ("admin", "delivery", "customer").
func (k AudienceKind) Key() string {
	if key, ok := getAudienceKindKeys()[k]; ok {
		return key
	}
	return "unknown"
}

// String implements fmt.Stringer using the kind key.
func (k AudienceKind) String() string {
	return k.Key()
}

// Validate checks that the kind is one of the addressable classes.
func (k AudienceKind) Validate() error {
	switch k {
	case AudienceAdmin, AudienceDeliveryPerson, AudienceCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"audience kind is invalid",
			fmt.Errorf("%d is not a valid audience kind", k),
		)
	}
}

// Audience is the value object addressing one notification recipient:
// the admin collective, a specific delivery person, or a specific customer.
// The kind uniquely determines whether a member id is meaningful.
type Audience struct {
	kind AudienceKind
	id   *int64
}

// NewAdminAudience addresses the shared admin collective.
func NewAdminAudience() Audience {
	return Audience{kind: AudienceAdmin}
}

// NewDeliveryPersonAudience addresses a specific delivery person.
func NewDeliveryPersonAudience(id int64) (Audience, error) {
	if id <= 0 {
		return Audience{}, errs.NewValueIsRequiredError("deliveryPersonID")
	}
	return Audience{kind: AudienceDeliveryPerson, id: &id}, nil
}

// NewCustomerAudience addresses a specific customer.
func NewCustomerAudience(id int64) (Audience, error) {
	if id <= 0 {
		return Audience{}, errs.NewValueIsRequiredError("customerID")
	}
	return Audience{kind: AudienceCustomer, id: &id}, nil
}

// NewAudience builds an audience from its storage representation. Admin must
// carry no id; delivery and customer audiences require one.
func NewAudience(kind AudienceKind, id *int64) (Audience, error) {
	if err := kind.Validate(); err != nil {
		return Audience{}, err
	}
	if kind == AudienceAdmin {
		return NewAdminAudience(), nil
	}
	if id == nil {
		return Audience{}, errs.NewValueIsRequiredError("audienceID")
	}
	if kind == AudienceDeliveryPerson {
		return NewDeliveryPersonAudience(*id)
	}
	return NewCustomerAudience(*id)
}

// Kind returns the audience kind.
func (a Audience) Kind() AudienceKind {
	return a.kind
}

// ID returns the audience member id, nil for the admin collective.
func (a Audience) ID() *int64 {
	return a.id
}

// Validate checks that the audience addresses a real recipient class.
func (a Audience) Validate() error {
	if err := a.kind.Validate(); err != nil {
		return err
	}
	if a.kind != AudienceAdmin && a.id == nil {
		return errs.NewValueIsRequiredError("audienceID")
	}
	return nil
}

// IsEqual compares two audiences by kind and member id.
func (a Audience) IsEqual(other Audience) bool {
	if a.kind != other.kind {
		return false
	}
	if a.id == nil || other.id == nil {
		return a.id == other.id
	}
	return *a.id == *other.id
}

// Room returns the live broadcast room this audience listens on:
// "admin", "delivery-{id}" or "customer-{id}".
func (a Audience) Room() string {
	switch a.kind {
	case AudienceDeliveryPerson:
		return "delivery-" + strconv.FormatInt(*a.id, 10)
	case AudienceCustomer:
		return "customer-" + strconv.FormatInt(*a.id, 10)
	default:
		return "admin"
	}
}
