package ingredient

// Ingredient is an entry in the product reference table. Two entries with the
// same name but different measurement units are distinct entities.
type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}
