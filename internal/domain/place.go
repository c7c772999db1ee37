package domain

import "fmt"

// Category is the fixed classification of a place.
type Category string

const (
	CategoryPlacesToEat Category = "Places to eat"
	CategoryAdventures  Category = "Adventures"
	CategoryServices    Category = "Services"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryPlacesToEat, CategoryAdventures, CategoryServices:
		return true
	}
	return false
}

// Categories returns the enumeration in menu order.
func Categories() []Category {
	return []Category{CategoryPlacesToEat, CategoryAdventures, CategoryServices}
}

// Field identifies one editable place-card field.
type Field string

const (
	FieldName     Field = "name"
	FieldCategory Field = "category"
	FieldPhotos   Field = "photos"
	FieldMapLink  Field = "map_link"
	FieldPhone    Field = "phone_number"
	FieldWhatsApp Field = "whatsapp_number"
	FieldHours    Field = "hours_of_operation"
)

func (f Field) String() string { return string(f) }

func (f Field) IsValid() bool {
	switch f {
	case FieldName, FieldCategory, FieldPhotos, FieldMapLink, FieldPhone, FieldWhatsApp, FieldHours:
		return true
	}
	return false
}

// Label returns the button caption shown for the field in the edit bar.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldCategory:
		return "Category"
	case FieldPhotos:
		return "Photos"
	case FieldMapLink:
		return "Google map"
	case FieldPhone:
		return "Phone number"
	case FieldWhatsApp:
		return "WhatsApp"
	case FieldHours:
		return "Hours of operation"
	}
	return string(f)
}

// EditableFields returns all card fields in edit-bar (and diff) order.
func EditableFields() []Field {
	return []Field{FieldName, FieldCategory, FieldPhotos, FieldMapLink, FieldPhone, FieldWhatsApp, FieldHours}
}

// Place is one place card. ID is assigned by the record store when the card
// is first created and never changes afterwards.
type Place struct {
	ID               string
	Name             string
	Category         Category
	PhotoFolderLink  string
	MapLink          string
	PhoneNumber      string
	WhatsAppNumber   string
	HoursOfOperation string
}

// Value returns the string value of the given field.
// The second return is false for an unknown field.
func (p *Place) Value(f Field) (string, bool) {
	switch f {
	case FieldName:
		return p.Name, true
	case FieldCategory:
		return string(p.Category), true
	case FieldPhotos:
		return p.PhotoFolderLink, true
	case FieldMapLink:
		return p.MapLink, true
	case FieldPhone:
		return p.PhoneNumber, true
	case FieldWhatsApp:
		return p.WhatsAppNumber, true
	case FieldHours:
		return p.HoursOfOperation, true
	}
	return "", false
}

// SetValue assigns the string value of the given field.
// Returns false (and changes nothing) for an unknown field.
func (p *Place) SetValue(f Field, v string) bool {
	switch f {
	case FieldName:
		p.Name = v
	case FieldCategory:
		p.Category = Category(v)
	case FieldPhotos:
		p.PhotoFolderLink = v
	case FieldMapLink:
		p.MapLink = v
	case FieldPhone:
		p.PhoneNumber = v
	case FieldWhatsApp:
		p.WhatsAppNumber = v
	case FieldHours:
		p.HoursOfOperation = v
	default:
		return false
	}
	return true
}

// Clone returns an independent copy of the place.
func (p *Place) Clone() *Place {
	cp := *p
	return &cp
}

// MissingFields returns the editable fields that are still blank,
// in edit-bar order.
func (p *Place) MissingFields() []Field {
	var missing []Field
	for _, f := range EditableFields() {
		v, _ := p.Value(f)
		if v == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsFilled reports whether every editable field has a value.
func (p *Place) IsFilled() bool {
	return len(p.MissingFields()) == 0
}

// Summary renders the card as the multi-line text shown to the operator.
func (p *Place) Summary() string {
	return fmt.Sprintf(
		"Name: %s\nCategory: %s\nPhotos: %s\nGoogle map: %s\nPhone number: %s\nWhatsApp: %s\nHours of operation: %s",
		p.Name, p.Category, p.PhotoFolderLink, p.MapLink, p.PhoneNumber, p.WhatsAppNumber, p.HoursOfOperation,
	)
}

// Operator is an authenticated user acting on a card.
type Operator struct {
	ID        int64
	FirstName string
	LastName  string
}

// Coordinates is a geographic point extracted from a map link or shared
// by an operator.
type Coordinates struct {
	Lat float64
	Lon float64
}
