package service

import (
	"github.com/StyNW7/WhatsVUpp-V99/internal/adapter"
)

type ClientServices struct {
	CipherService ClientCipherService
}

func NewClientServices(serverAdapter adapter.CipherAdapter) *ClientServices {
	return &ClientServices{
		CipherService: NewClientCipherService(serverAdapter),
	}
}
