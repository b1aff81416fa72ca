package config_test

import (
	"errors"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "go.trai.ch/nosave/internal/adapters/config"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports"
	"go.trai.ch/nosave/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestValueNode_UsesLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	want := domain.DefaultConfig()
	want.Installer = "pnpm"
	loader.EXPECT().Load().Return(want, nil)

	got, _, err := graft.ExecuteFor[domain.Config](
		t.Context(),
		graft.PatchValue[ports.ConfigLoader](loader),
		graft.DisableCache(),
	)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValueNode_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	loadErr := errors.Join(domain.ErrConfigLoadFailed, errors.New("unreadable"))
	loader.EXPECT().Load().Return(domain.Config{}, loadErr)

	_, _, err := graft.ExecuteFor[domain.Config](
		t.Context(),
		graft.PatchValue[ports.ConfigLoader](loader),
		graft.DisableCache(),
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unreadable")
}
