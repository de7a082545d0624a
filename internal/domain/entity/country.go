package entity

// Country is a static lookup entry used by the checkout form.
type Country struct {
	Name   string   `json:"name"`
	Cities []string `json:"cities"`
}
