package model

import "fmt"

// Field names accepted by Request.Set and Collection sorting.
const (
	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldVaccine   = "vaccine"
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

// FieldNames lists the request fields in wire order.
var FieldNames = []string{
	FieldID, FieldName, FieldPhone, FieldVaccine, FieldDate, FieldStartTime, FieldEndTime,
}

// Request is one vaccination appointment request.
//
// Fields are set through validating setters: an invalid value is rejected
// with a ValidationError and the field keeps its previous value. The empty
// string means "unset" and is always accepted, so a Request can be built
// incrementally and invalid fields reassigned without discarding the rest.
type Request struct {
	id           string
	patientName  string
	patientPhone string
	vaccine      string
	date         string
	startTime    string
	endTime      string
}

// New returns an empty Request with all fields unset.
func New() *Request {
	return &Request{}
}

// NewFromFields builds a Request from the seven wire-order field values.
// The first invalid field aborts with its ValidationError.
func NewFromFields(fields []string) (*Request, error) {
	if len(fields) != len(FieldNames) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(FieldNames), len(fields))
	}
	r := New()
	for i, name := range FieldNames {
		if err := r.Set(name, fields[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var zero = 0.0

// SetID sets the id field. The value must parse as a number.
func (r *Request) SetID(v string) error {
	if v != "" {
		if err := validateNumber(FieldID, v, nil); err != nil {
			return err
		}
	}
	r.id = v
	return nil
}

// SetPatientName sets the patient name. Only letters are accepted.
func (r *Request) SetPatientName(v string) error {
	if v != "" {
		if err := validateName(FieldName, v); err != nil {
			return err
		}
	}
	r.patientName = v
	return nil
}

// SetPatientPhone sets the patient phone. The value must parse as a
// non-negative number.
func (r *Request) SetPatientPhone(v string) error {
	if v != "" {
		if err := validateNumber(FieldPhone, v, &zero); err != nil {
			return err
		}
	}
	r.patientPhone = v
	return nil
}

// SetVaccine sets the vaccine. Must be one of Vaccines.
func (r *Request) SetVaccine(v string) error {
	if v != "" {
		if err := validateVaccine(FieldVaccine, v); err != nil {
			return err
		}
	}
	r.vaccine = v
	return nil
}

// SetDate sets the appointment date in YYYY-MM-DD form.
func (r *Request) SetDate(v string) error {
	if v != "" {
		if err := validateDate(FieldDate, v); err != nil {
			return err
		}
	}
	r.date = v
	return nil
}

// SetStartTime sets the appointment start in HH:MM form.
func (r *Request) SetStartTime(v string) error {
	if v != "" {
		if err := validateTime(FieldStartTime, v); err != nil {
			return err
		}
	}
	r.startTime = v
	return nil
}

// SetEndTime sets the appointment end in HH:MM form.
func (r *Request) SetEndTime(v string) error {
	if v != "" {
		if err := validateTime(FieldEndTime, v); err != nil {
			return err
		}
	}
	r.endTime = v
	return nil
}

// Set assigns the named field through its validating setter.
func (r *Request) Set(field, value string) error {
	switch field {
	case FieldID:
		return r.SetID(value)
	case FieldName:
		return r.SetPatientName(value)
	case FieldPhone:
		return r.SetPatientPhone(value)
	case FieldVaccine:
		return r.SetVaccine(value)
	case FieldDate:
		return r.SetDate(value)
	case FieldStartTime:
		return r.SetStartTime(value)
	case FieldEndTime:
		return r.SetEndTime(value)
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
}

func (r *Request) ID() string           { return r.id }
func (r *Request) PatientName() string  { return r.patientName }
func (r *Request) PatientPhone() string { return r.patientPhone }
func (r *Request) Vaccine() string      { return r.vaccine }
func (r *Request) Date() string         { return r.date }
func (r *Request) StartTime() string    { return r.startTime }
func (r *Request) EndTime() string      { return r.endTime }

// Field returns the named field's current value.
func (r *Request) Field(name string) (string, error) {
	switch name {
	case FieldID:
		return r.id, nil
	case FieldName:
		return r.patientName, nil
	case FieldPhone:
		return r.patientPhone, nil
	case FieldVaccine:
		return r.vaccine, nil
	case FieldDate:
		return r.date, nil
	case FieldStartTime:
		return r.startTime, nil
	case FieldEndTime:
		return r.endTime, nil
	default:
		return "", fmt.Errorf("unknown field: %s", name)
	}
}

// Fields returns the field values in wire order.
func (r *Request) Fields() []string {
	return []string{r.id, r.patientName, r.patientPhone, r.vaccine, r.date, r.startTime, r.endTime}
}

// Clone returns an independent copy of the request.
func (r *Request) Clone() *Request {
	c := *r
	return &c
}

// Equal reports whether two requests hold the same field values.
func (r *Request) Equal(o *Request) bool {
	return o != nil && *r == *o
}

// String renders the request for display and search matching.
func (r *Request) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Phone: %s, Vaccine: %s, Date: %s, Start Time: %s, End Time: %s",
		r.id, r.patientName, r.patientPhone, r.vaccine, r.date, r.startTime, r.endTime)
}
