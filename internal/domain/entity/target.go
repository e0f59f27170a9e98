package entity

// TargetValues são os valores resolvidos uma única vez antes do lote,
// garantindo que todas as contas recebam exatamente o mesmo conteúdo.
type TargetValues struct {
	Width           uint   `json:"width"`
	Height          uint   `json:"height"`
	MonitorDeviceID string `json:"monitor_device_id"`
	MonitorIndex    uint   `json:"monitor_index"`
}
