package entity

// Profile referencia o arquivo de configuração de uma conta gerenciada.
type Profile struct {
	AccountID string `json:"account_id"`
	FilePath  string `json:"file_path"`
}

// ShortID retorna o prefixo do identificador usado nas mensagens de console.
func (p Profile) ShortID() string {
	if len(p.AccountID) <= 8 {
		return p.AccountID
	}
	return p.AccountID[:8] + "..."
}
