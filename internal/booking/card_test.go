package booking

import "testing"

func TestStatusPresentation(t *testing.T) {
	cases := []struct {
		status Status
		color  string
		label  string
	}{
		{StatusConfirmed, ColorSuccess, "Confirmada"},
		{StatusCancelled, ColorError, "Cancelada"},
		{StatusPending, ColorPrimary, "Pendente"},
		{Status(""), ColorPrimary, "Pendente"},
		{Status("whatever"), ColorPrimary, "Pendente"},
	}

	for _, tc := range cases {
		p := StatusPresentation(tc.status)
		if p.Color != tc.color {
			t.Errorf("StatusPresentation(%q).Color = %q, want %q", tc.status, p.Color, tc.color)
		}
		if p.Label != tc.label {
			t.Errorf("StatusPresentation(%q).Label = %q, want %q", tc.status, p.Label, tc.label)
		}
	}
}
