package models

// HomestayInput is the submission payload accepted by POST /api/homestays.
// Field names match what the wizard sends; tag rules match the review the
// client already ran, so a direct API call gets the same answers.
type HomestayInput struct {
	Ten    string `json:"ten" binding:"notblank"`
	DiaChi string `json:"diaChi" binding:"notblank"`
	Sdt    string `json:"sdt" binding:"notblank"`

	Email   string `json:"email"`
	Website string `json:"website"`
	QuanAn  string `json:"quanAn"`
	Checkin string `json:"checkin"`
	LuuY    string `json:"luuY"`

	DichVu []string  `json:"dichVu" binding:"omitempty"`
	Faq    []FAQItem `json:"faq" binding:"omitempty,dive"`
}

// Normalize applies the schema defaults for absent optional sequences so the
// stored row and the webhook payload always carry [] rather than null.
func (in *HomestayInput) Normalize() {
	if in.DichVu == nil {
		in.DichVu = []string{}
	}
	if in.Faq == nil {
		in.Faq = []FAQItem{}
	}
}
