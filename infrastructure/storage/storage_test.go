package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GomesTenorio/Hanami2025/infrastructure/storage/mocks"
)

func TestNewMirroredStore_WithoutMirrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mocks.NewMockArtifactStore(ctrl)
	assert.Same(t, primary, NewMirroredStore(primary))
}

func TestMirroredStore_Save(t *testing.T) {
	content := []byte("{}")

	tests := []struct {
		name     string
		setup    func(primary, mirrorA, mirrorB *mocks.MockArtifactStore)
		validate func(t *testing.T, location string, err error)
	}{
		{
			name: "Replica em todos os espelhos e devolve a localização principal",
			setup: func(primary, mirrorA, mirrorB *mocks.MockArtifactStore) {
				gomock.InOrder(
					primary.EXPECT().Save(gomock.Any(), "r.json", content, "application/json").Return("exports/r.json", nil),
					mirrorA.EXPECT().Save(gomock.Any(), "r.json", content, "application/json").Return("s3://a/r.json", nil),
					mirrorB.EXPECT().Save(gomock.Any(), "r.json", content, "application/json").Return("s3://b/r.json", nil),
				)
			},
			validate: func(t *testing.T, location string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "exports/r.json", location)
			},
		},
		{
			name: "Falha de espelho é ignorada",
			setup: func(primary, mirrorA, mirrorB *mocks.MockArtifactStore) {
				primary.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("exports/r.json", nil)
				mirrorA.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))
				mirrorB.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("s3://b/r.json", nil)
			},
			validate: func(t *testing.T, location string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "exports/r.json", location)
			},
		},
		{
			name: "Falha do principal interrompe a gravação",
			setup: func(primary, mirrorA, mirrorB *mocks.MockArtifactStore) {
				primary.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("disco cheio"))
			},
			validate: func(t *testing.T, location string, err error) {
				assert.EqualError(t, err, "disco cheio")
				assert.Empty(t, location)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			primary := mocks.NewMockArtifactStore(ctrl)
			mirrorA := mocks.NewMockArtifactStore(ctrl)
			mirrorB := mocks.NewMockArtifactStore(ctrl)
			tt.setup(primary, mirrorA, mirrorB)

			store := NewMirroredStore(primary, mirrorA, mirrorB)
			location, err := store.Save(context.Background(), "r.json", content, "application/json")
			tt.validate(t, location, err)
		})
	}
}
