package entity

// DefaultServings porciones por defecto cuando no hay configuración válida.
const DefaultServings = 2

// ServingConfig configuración singleton del número de porciones.
type ServingConfig struct {
	Servings int `json:"servings"`
}

// Repaired devuelve la configuración con Servings reparado al valor por defecto si no es positivo.
func (c ServingConfig) Repaired() ServingConfig {
	if c.Servings <= 0 {
		return ServingConfig{Servings: DefaultServings}
	}
	return c
}
