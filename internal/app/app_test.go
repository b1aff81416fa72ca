package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nosave/internal/app"
	"go.trai.ch/nosave/internal/core/domain"
	"go.trai.ch/nosave/internal/core/ports/mocks"
	"go.trai.ch/nosave/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const workDir = "/work/project"

type fixture struct {
	app       *app.App
	store     *mocks.MockSnapshotStore
	installer *mocks.MockInstaller
	reader    *mocks.MockManifestReader
	logger    *mocks.MockLogger
	manifest  *domain.Snapshot
	lockfile  *domain.Snapshot
}

func newFixture(t *testing.T, cfg domain.Config) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:     mocks.NewMockSnapshotStore(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		reader:    mocks.NewMockManifestReader(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		manifest: &domain.Snapshot{
			Path:   filepath.Join(workDir, "package.json"),
			Data:   []byte(`{"name":"demo"}`),
			Exists: true,
		},
		lockfile: &domain.Snapshot{
			Path:   filepath.Join(workDir, "yarn.lock"),
			Data:   []byte("# lock\n"),
			Exists: true,
		},
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	res := resolver.NewResolver(f.reader, f.logger)
	f.app = app.New(cfg, workDir, f.store, f.installer, res, f.logger)
	return f
}

func (f *fixture) expectSnapshots() {
	f.store.EXPECT().Load(f.manifest.Path).Return(f.manifest, nil)
	f.store.EXPECT().Load(f.lockfile.Path).Return(f.lockfile, nil)
}

func (f *fixture) expectRestore() {
	f.store.EXPECT().Changed(f.manifest).Return(true, nil)
	f.store.EXPECT().Restore(f.manifest).Return(nil)
	f.store.EXPECT().Changed(f.lockfile).Return(true, nil)
	f.store.EXPECT().Restore(f.lockfile).Return(nil)
}

func TestApp_Run_RestoresOnSuccess(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()

	gomock.InOrder(
		f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.InstallRequest) (int, error) {
				assert.Equal(t, workDir, req.Dir)
				assert.Equal(t, []string{"add", "react", "--foo", "bar", "baz"}, req.Args())
				return 0, nil
			}),
		f.store.EXPECT().Changed(f.manifest).Return(true, nil),
		f.store.EXPECT().Restore(f.manifest).Return(nil),
		f.store.EXPECT().Changed(f.lockfile).Return(false, nil),
		f.store.EXPECT().Restore(f.lockfile).Return(nil),
	)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react", "--foo", "bar", "baz"}))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_Run_SkipsRestoreOnFailure(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(2, nil)
	f.store.EXPECT().Restore(gomock.Any()).Times(0)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestApp_Run_MissingManifest(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.store.EXPECT().Load(f.manifest.Path).Return(&domain.Snapshot{Path: f.manifest.Path}, nil)
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Times(0)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)
	assert.Equal(t, domain.ExitCodeConfig, code)
	assert.Contains(t, err.Error(), "No 'package.json' file found!")
}

func TestApp_Run_MissingLockfile(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	absent := &domain.Snapshot{Path: f.lockfile.Path}
	f.store.EXPECT().Load(f.manifest.Path).Return(f.manifest, nil)
	f.store.EXPECT().Load(f.lockfile.Path).Return(absent, nil)

	gomock.InOrder(
		f.logger.EXPECT().Warn("No 'yarn.lock' file found."),
		f.logger.EXPECT().Info("Any 'yarn.lock' generated by the install will be deleted."),
		f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(0, nil),
	)
	f.store.EXPECT().Changed(f.manifest).Return(false, nil)
	f.store.EXPECT().Restore(f.manifest).Return(nil)
	f.store.EXPECT().Changed(absent).Return(true, nil)
	f.store.EXPECT().Restore(absent).Return(nil)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_Run_SnapshotError(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	readErr := errors.Join(domain.ErrSnapshotReadFailed, errors.New("permission denied"))
	f.store.EXPECT().Load(f.manifest.Path).Return(nil, readErr)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	assert.ErrorIs(t, err, domain.ErrSnapshotReadFailed)
	assert.Equal(t, domain.ExitCodeFailure, code)
}

func TestApp_Run_PeerDependencies(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()
	f.reader.EXPECT().Decode(f.manifest.Data).Return(&domain.Manifest{
		PeerDependencies:    []domain.Dependency{{Name: "react", Range: "^16.0.0 || ^17.0.0"}},
		HasPeerDependencies: true,
	}, nil)
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.InstallRequest) (int, error) {
			assert.Equal(t, []string{"add", "my-lib", "react@^17.0.0", "--dev"}, req.Args())
			return 0, nil
		})
	f.expectRestore()

	args := domain.ParseArgs([]string{"my-lib", "-p", "--peer-version", "last", "--dev"})
	code, err := f.app.Run(t.Context(), args)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_Run_ManifestNotParsedWithoutPeerDeps(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.manifest.Data = []byte("{ not json")
	f.expectSnapshots()
	f.reader.EXPECT().Decode(gomock.Any()).Times(0)
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(0, nil)
	f.expectRestore()

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_Run_PeerResolutionError(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()
	f.reader.EXPECT().Decode(f.manifest.Data).Return(nil, domain.ErrManifestParseFailed)
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Times(0)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react", "--peer-deps"}))
	assert.ErrorIs(t, err, domain.ErrManifestParseFailed)
	assert.Equal(t, domain.ExitCodeFailure, code)
}

func TestApp_Run_InstallerError(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(domain.ExitCodeConfig, domain.ErrInstallerNotFound)
	f.store.EXPECT().Restore(gomock.Any()).Times(0)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	assert.ErrorIs(t, err, domain.ErrInstallerNotFound)
	assert.Equal(t, domain.ExitCodeConfig, code)
}

func TestApp_Run_RestoreError(t *testing.T) {
	f := newFixture(t, domain.DefaultConfig())
	f.expectSnapshots()
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(0, nil)
	restoreErr := errors.Join(domain.ErrRestoreFailed, errors.New("read-only file system"))
	f.store.EXPECT().Changed(gomock.Any()).Return(true, nil).Times(2)
	f.store.EXPECT().Restore(f.manifest).Return(restoreErr)
	f.store.EXPECT().Restore(f.lockfile).Return(nil)

	code, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	assert.ErrorIs(t, err, domain.ErrRestoreFailed)
	assert.Equal(t, domain.ExitCodeFailure, code)
}

func TestApp_Run_CustomFiles(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.ManifestFile = "/abs/manifest.json"
	cfg.LockFile = "deps.lock"
	f := newFixture(t, cfg)
	f.manifest.Path = "/abs/manifest.json"
	f.lockfile.Path = filepath.Join(workDir, "deps.lock")
	f.expectSnapshots()
	f.installer.EXPECT().Install(gomock.Any(), gomock.Any()).Return(0, nil)
	f.expectRestore()

	_, err := f.app.Run(t.Context(), domain.ParseArgs([]string{"react"}))
	require.NoError(t, err)
}
