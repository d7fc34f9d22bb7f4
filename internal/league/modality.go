package league

// Modality is the playing surface a player prefers. The value doubles as the
// display label; there is no separate code.
type Modality string

const (
	ModalityFutsal Modality = "Futsal"
	ModalitySalao  Modality = "Salão"
	ModalityCampo  Modality = "Campo"
)

// Modalities lists every modality in display order.
func Modalities() []Modality {
	return []Modality{ModalityFutsal, ModalitySalao, ModalityCampo}
}

// CoerceModality maps a raw field value onto a Modality, substituting Futsal
// for anything unrecognized.
func CoerceModality(raw any) Modality {
	return coerce(raw, Modalities(), ModalityFutsal)
}
