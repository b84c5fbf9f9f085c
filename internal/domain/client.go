package domain

type Client struct {
	ID        int32  `json:"id"`
	Name      string `json:"nombre"`
	Document  string `json:"ruc_dni"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	Contact   string `json:"persona_contacto"`
	CreatedOn string `json:"creado_en"`
}
