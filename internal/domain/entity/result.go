package entity

// PatchOutcome descreve o efeito de uma regra sobre um conteúdo.
type PatchOutcome struct {
	Key        string `json:"key"`
	Applied    bool   `json:"applied"`
	MatchCount int    `json:"match_count"`
	Appended   bool   `json:"appended"`
}

// ProfileStatus is the terminal state of one profile in a batch.
type ProfileStatus string

const (
	StatusUpdated  ProfileStatus = "updated"
	StatusNotFound ProfileStatus = "not_found"
	StatusFailed   ProfileStatus = "failed"
	StatusUnlocked ProfileStatus = "unlocked"
)

// ProfileResult represents the outcome of processing a single profile.
type ProfileResult struct {
	AccountID   string         `json:"account_id"`
	FilePath    string         `json:"file_path"`
	Status      ProfileStatus  `json:"status"`
	Reason      string         `json:"reason,omitempty"`
	Changed     bool           `json:"changed"`
	Outcomes    []PatchOutcome `json:"outcomes,omitempty"`
	VerifyLines []string       `json:"verify_lines,omitempty"`
}

// Succeeded informa se o perfil conta como atualizado no resumo.
func (r ProfileResult) Succeeded() bool {
	return r.Status == StatusUpdated || r.Status == StatusUnlocked
}

// BatchSummary agrega os resultados de um lote de perfis.
type BatchSummary struct {
	Updated    int             `json:"updated"`
	Failed     int             `json:"failed"`
	DryRun     bool            `json:"dry_run"`
	PerProfile []ProfileResult `json:"per_profile"`
}

// Record adiciona um resultado e atualiza as contagens.
func (s *BatchSummary) Record(r ProfileResult) {
	if r.Succeeded() {
		s.Updated++
	} else {
		s.Failed++
	}
	s.PerProfile = append(s.PerProfile, r)
}

// Changed conta quantos perfis tiveram o conteúdo alterado.
func (s BatchSummary) Changed() int {
	n := 0
	for _, r := range s.PerProfile {
		if r.Changed {
			n++
		}
	}
	return n
}
