package generator

import "github.com/pawel-sp/Catchable/internal/models"

// WrapperEmitter defines the interface for turning validated interface
// descriptions into forwarding wrapper source
type WrapperEmitter interface {
	Emit(desc *models.InterfaceDescription) models.WrapperSource
	EmitFile(descs []*models.InterfaceDescription) models.GeneratedFile
}

var _ WrapperEmitter = (*Emitter)(nil)
