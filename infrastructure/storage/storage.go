// Package storage persiste os arquivos enviados e os relatórios exportados
package storage

import (
	"context"

	"github.com/sirupsen/logrus"
)

// ArtifactStore grava um artefato e devolve sua localização
type ArtifactStore interface {
	Save(ctx context.Context, name string, content []byte, contentType string) (string, error)
}

// mirroredStore grava no destino principal e replica nos espelhos.
// Falhas dos espelhos são apenas registradas.
type mirroredStore struct {
	primary ArtifactStore
	mirrors []ArtifactStore
}

func NewMirroredStore(primary ArtifactStore, mirrors ...ArtifactStore) ArtifactStore {
	if len(mirrors) == 0 {
		return primary
	}
	return &mirroredStore{primary: primary, mirrors: mirrors}
}

func (m *mirroredStore) Save(ctx context.Context, name string, content []byte, contentType string) (string, error) {
	location, err := m.primary.Save(ctx, name, content, contentType)
	if err != nil {
		return "", err
	}

	for _, mirror := range m.mirrors {
		mirrorLocation, err := mirror.Save(ctx, name, content, contentType)
		if err != nil {
			logrus.WithError(err).WithField("artifact", name).Warn("storage: falha ao replicar artefato")
			continue
		}
		logrus.WithFields(logrus.Fields{
			"artifact": name,
			"location": mirrorLocation,
		}).Debug("storage: artefato replicado")
	}

	return location, nil
}
