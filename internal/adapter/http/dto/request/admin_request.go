package request

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PriceTableRequest is the nested price table as edited in the admin panel,
// e.g. {"cameras":{"bullet":1800}}. Categories or fields left out keep their
// default value.
type PriceTableRequest map[string]map[string]any

// ToFields flattens the request to "category.field" keys.
func (r PriceTableRequest) ToFields() map[string]any {
	out := make(map[string]any)
	for category, fields := range r {
		for name, v := range fields {
			out[category+"."+name] = v
		}
	}
	return out
}
