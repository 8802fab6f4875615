package booking

// Display color tokens resolved by the presentation layer.
const (
	ColorPrimary = "primary"
	ColorSuccess = "success"
	ColorError   = "error"
)

type Presentation struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

// StatusPresentation maps an appointment status to its card color and
// label. Unknown or absent statuses render the same as pending.
func StatusPresentation(s Status) Presentation {
	switch s {
	case StatusConfirmed:
		return Presentation{Color: ColorSuccess, Label: "Confirmada"}
	case StatusCancelled:
		return Presentation{Color: ColorError, Label: "Cancelada"}
	default:
		return Presentation{Color: ColorPrimary, Label: "Pendente"}
	}
}
