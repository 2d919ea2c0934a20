package quote

import (
	"strings"
	"testing"

	"github.com/safispaces/safispaces/internal/domain/models"
)

func TestSetField_StripsMarkup(t *testing.T) {
	f := NewForm()
	f.SetField(FieldName, `<script>alert("x")</script>Jane`)

	got := f.Fields().Name
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("Name = %q, markup delimiters should not survive", got)
	}
	if !strings.Contains(got, "Jane") {
		t.Errorf("Name = %q, text content should be preserved", got)
	}
}

func TestSetField_TruncatesToCaps(t *testing.T) {
	tests := []struct {
		field string
		max   int
	}{
		{FieldName, models.MaxNameLen},
		{FieldEmail, models.MaxEmailLen},
		{FieldPhone, models.MaxPhoneLen},
		{FieldMessage, models.MaxMessageLen},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := NewForm()
			f.SetField(tt.field, strings.Repeat("a", tt.max+50))

			fields := f.Fields()
			var got string
			switch tt.field {
			case FieldName:
				got = fields.Name
			case FieldEmail:
				got = fields.Email
			case FieldPhone:
				got = fields.Phone
			case FieldMessage:
				got = fields.Message
			}

			if len([]rune(got)) != tt.max {
				t.Errorf("len(%s) = %d, want %d", tt.field, len([]rune(got)), tt.max)
			}
		})
	}
}

func TestSetField_ServiceKeys(t *testing.T) {
	tests := []struct {
		in   string
		want models.ServiceKey
	}{
		{"office", models.ServiceOffice},
		{"post-construction", models.ServicePostConstruction},
		{"Carpet", models.ServiceCarpet},
		{"", models.ServiceUnspecified},
		{"window-washing", models.ServiceUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := NewForm()
			f.SetField(FieldService, tt.in)
			if got := f.Fields().Service; got != tt.want {
				t.Errorf("Service = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetField_UnknownFieldIgnored(t *testing.T) {
	f := NewForm()
	f.SetField("nonsense", "value")

	if f.Fields() != emptyFields() {
		t.Errorf("unknown field should not change anything: %+v", f.Fields())
	}
}

func TestSetField_ClearsStatus(t *testing.T) {
	f := NewForm()
	f.setStatus(errorStatus(ReasonInvalidEmail, MsgInvalidEmail))

	f.SetField(FieldEmail, "jane@example.com")

	if st := f.Status(); st.Kind != StatusNone {
		t.Errorf("status after edit = %+v, want cleared", st)
	}
}

func TestReset(t *testing.T) {
	f := NewForm()
	f.SetField(FieldName, "Jane")
	f.SetField(FieldService, "office")
	f.setStatus(successStatus())

	f.Reset()

	fields := f.Fields()
	if fields != emptyFields() {
		t.Errorf("fields after Reset = %+v, want defaults", fields)
	}
	if fields.Service != models.ServiceUnspecified {
		t.Errorf("Service after Reset = %q, want %q", fields.Service, models.ServiceUnspecified)
	}
	if st := f.Status(); st.Kind != StatusNone {
		t.Errorf("status after Reset = %+v, want cleared", st)
	}
}

func TestBeginSubmit_SingleFlight(t *testing.T) {
	f := NewForm()

	if !f.BeginSubmit() {
		t.Fatal("first BeginSubmit should succeed")
	}
	if f.BeginSubmit() {
		t.Error("second BeginSubmit should fail while in flight")
	}
	if !f.Submitting() {
		t.Error("Submitting() should report true")
	}

	f.EndSubmit()

	if !f.BeginSubmit() {
		t.Error("BeginSubmit after EndSubmit should succeed")
	}
}
