package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddGlobalFlags(fs)
	AddMTFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, EncodingUTF8, cfg.Encoding)
	assert.Equal(t, 10, cfg.Samples)
	assert.Equal(t, 624, cfg.Observations)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, cfg.Lags)
	assert.Equal(t, DefaultGenerators, cfg.Generators)
	assert.NoError(t, cfg.Validate())

	// 既定の生成器リストを書き換えても DefaultGenerators は変わらない
	cfg.Generators[0] = "changed"
	assert.Equal(t, "lcg", DefaultGenerators[0])
}

func TestLoad_Flags(t *testing.T) {
	fs := newFlagSet(t, "--seed", "98765", "--observe", "700", "--dump-state", "-d", "-o", "/tmp/out")

	cfg, err := Load(fs, viper.New())
	require.NoError(t, err)

	assert.Equal(t, uint64(98765), cfg.Seed)
	assert.Equal(t, 700, cfg.Observations)
	assert.True(t, cfg.DumpState)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	// 登録していないフラグは既定値
	assert.Equal(t, 10000, cfg.Bytes)
	assert.Equal(t, 0.05, cfg.Alpha)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PRNGLAB_SEED", "777")
	t.Setenv("PRNGLAB_DRY_RUN", "true")

	cfg, err := Load(newFlagSet(t), viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(777), cfg.Seed)
	assert.True(t, cfg.DryRun)

	// フラグは環境変数より優先される
	cfg, err = Load(newFlagSet(t, "--seed", "1"), viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prnglab.yaml")
	content := "seed: 42\nencoding: shift-jis\nlags: [1, 3]\ngenerators: [lcg, mt19937]\ndrbg-hash: blake2b\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(newFlagSet(t, "--config", path), viper.New())
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, EncodingSJIS, cfg.Encoding)
	assert.Equal(t, []int{1, 3}, cfg.Lags)
	assert.Equal(t, []string{"lcg", "mt19937"}, cfg.Generators)
	assert.Equal(t, "blake2b", cfg.DRBGHash)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("設定ファイルが存在しない", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := Load(newFlagSet(t, "--config", missing), viper.New())
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("不正な文字コード", func(t *testing.T) {
		_, err := Load(newFlagSet(t, "--encoding", "euc-jp"), viper.New())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "既定値", modify: func(*Config) {}},
		{name: "Shift-JIS", modify: func(c *Config) { c.Encoding = EncodingSJIS }},
		{name: "不明な文字コード", modify: func(c *Config) { c.Encoding = "latin1" }, wantErr: true},
		{name: "負の観測数", modify: func(c *Config) { c.Samples = -1 }, wantErr: true},
		{name: "バイト数が0", modify: func(c *Config) { c.Bytes = 0 }, wantErr: true},
		{name: "有意水準が1", modify: func(c *Config) { c.Alpha = 1 }, wantErr: true},
		{name: "ラグが0", modify: func(c *Config) { c.Lags = []int{0} }, wantErr: true},
		{name: "SHA3のDRBG", modify: func(c *Config) { c.DRBGHash = "sha3-256" }},
		{name: "不明なハッシュ関数", modify: func(c *Config) { c.DRBGHash = "md5" }, wantErr: true},
		{name: "64ビットのシード", modify: func(c *Config) { c.Seed = 1 << 40 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_StatsFlags(t *testing.T) {
	fs := pflag.NewFlagSet("stats", pflag.ContinueOnError)
	AddGlobalFlags(fs)
	AddStatsFlags(fs)
	require.NoError(t, fs.Parse([]string{"--drbg-hash", "sha3-256", "--generators", "hmac-drbg"}))

	cfg, err := Load(fs, viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sha3-256", cfg.DRBGHash)
	assert.Equal(t, []string{"hmac-drbg"}, cfg.Generators)

	fs = pflag.NewFlagSet("stats", pflag.ContinueOnError)
	AddStatsFlags(fs)
	require.NoError(t, fs.Parse([]string{"--drbg-hash", "md5"}))
	_, err = Load(fs, viper.New())
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_MTSeed(t *testing.T) {
	tests := []struct {
		name    string
		seed    uint64
		want    uint32
		wantErr bool
	}{
		{name: "既定値", seed: 12345, want: 12345},
		{name: "32ビットの最大値", seed: math.MaxUint32, want: math.MaxUint32},
		{name: "32ビットを超える", seed: math.MaxUint32 + 1, wantErr: true},
		{name: "64ビットの最大値", seed: math.MaxUint64, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Seed = tt.seed
			got, err := cfg.MTSeed()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDebugLogger(t *testing.T) {
	// デバッグモード有効
	var buf bytes.Buffer
	logger := NewDebugLogger(NewLogger(&buf, true))
	logger.Printf("test message %d\n", 123)
	assert.Contains(t, buf.String(), "test message 123")

	// デバッグモード無効
	buf.Reset()
	logger = NewDebugLogger(NewLogger(&buf, false))
	logger.Printf("should not appear\n")
	assert.NotContains(t, buf.String(), "should not appear")
}

func TestNewLogger_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false)
	log.Info().Str("generator", "lcg").Msg("done")
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "generator=lcg")
}
