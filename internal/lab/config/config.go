// Package config はprnglabコマンドの設定管理を行います
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shiroemons/go-prnglab/pkg/prng"
)

// Version はprnglabのバージョン
const Version = "0.1.0"

// EnvPrefix は環境変数の接頭辞 (PRNGLAB_SEED など)
const EnvPrefix = "PRNGLAB"

// 設定キー
const (
	KeyConfigFile   = "config"
	KeyDebug        = "debug"
	KeyDryRun       = "dry-run"
	KeyOutputDir    = "output-dir"
	KeyEncoding     = "encoding"
	KeySeed         = "seed"
	KeySamples      = "samples"
	KeyPredict      = "predict"
	KeyObservations = "observe"
	KeyVerify       = "verify"
	KeyDumpState    = "dump-state"
	KeyInput        = "input"
	KeyBytes        = "bytes"
	KeyAlpha        = "alpha"
	KeyLags         = "lags"
	KeyGenerators   = "generators"
	KeyDRBGHash     = "drbg-hash"
)

// 出力ファイルの文字コード
const (
	EncodingUTF8    = "utf-8"
	EncodingUTF8BOM = "utf-8-bom"
	EncodingSJIS    = "shift-jis"
)

// DefaultGenerators は stats と demo で使用する既定の生成器
var DefaultGenerators = []string{
	"lcg", "mt19937", "bbs", "hmac-drbg", "chacha20", "system", "xor", "box-muller",
}

// Config はアプリケーションの設定を保持します
type Config struct {
	Debug     bool
	DryRun    bool
	OutputDir string // 空ならレポートを保存しない
	Encoding  string

	// 攻撃
	Seed         uint64
	Samples      int // LCG 攻撃で観測する出力数
	Predict      int // 予測して照合する出力数
	Observations int // MT 攻撃で観測する出力数
	Verify       int // MT 複製を元の生成器と照合する出力数
	DumpState    bool
	Input        string // 観測値ファイル。指定時は生成器を使わない

	// 統計検定
	Bytes      int
	Alpha      float64
	Lags       []int
	Generators []string
	DRBGHash   string // hmac-drbg が使うハッシュ関数 (sha256, sha3-256, blake2b-256)
}

// Default は既定値の設定を返します
func Default() *Config {
	return &Config{
		Encoding:     EncodingUTF8,
		Seed:         12345,
		Samples:      10,
		Predict:      5,
		Observations: 624,
		Verify:       1000,
		Bytes:        10000,
		Alpha:        0.05,
		Lags:         []int{1, 2, 4, 8, 16},
		Generators:   append([]string(nil), DefaultGenerators...),
		DRBGHash:     prng.HashSHA256.String(),
	}
}

// AddGlobalFlags は全サブコマンド共通のフラグを登録します
func AddGlobalFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyConfigFile, "", "path to a YAML config file")
	fs.BoolP(KeyDebug, "d", d.Debug, "enable debug output")
	fs.BoolP(KeyDryRun, "n", d.DryRun, "perform a dry run without writing report files")
	fs.StringP(KeyOutputDir, "o", d.OutputDir, "directory to save the report in (empty: do not save)")
	fs.String(KeyEncoding, d.Encoding, "report encoding: utf-8, utf-8-bom or shift-jis")
}

// AddLCGFlags は attack lcg のフラグを登録します
func AddLCGFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint64(KeySeed, d.Seed, "seed of the target generator")
	fs.Int(KeySamples, d.Samples, "number of consecutive outputs to observe")
	fs.Int(KeyPredict, d.Predict, "number of outputs to predict")
	fs.StringP(KeyInput, "i", d.Input, "file with observed outputs, one integer per line")
}

// AddMTFlags は attack mt のフラグを登録します
func AddMTFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint64(KeySeed, d.Seed, "seed of the target generator")
	fs.Int(KeyObservations, d.Observations, "number of consecutive outputs to observe (at least 624)")
	fs.Int(KeyVerify, d.Verify, "number of clone outputs to check against the original")
	fs.Int(KeyPredict, d.Predict, "number of outputs to predict")
	fs.Bool(KeyDumpState, d.DumpState, "include the recovered state in the report")
	fs.StringP(KeyInput, "i", d.Input, "file with observed outputs, one integer per line")
}

// AddStatsFlags は stats と demo のフラグを登録します
func AddStatsFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Uint64(KeySeed, d.Seed, "seed of the deterministic generators")
	fs.Int(KeyBytes, d.Bytes, "number of bytes to test per generator")
	fs.Float64(KeyAlpha, d.Alpha, "significance level of the chi-squared test")
	fs.IntSlice(KeyLags, d.Lags, "autocorrelation lags")
	fs.StringSlice(KeyGenerators, d.Generators, "generators to test")
	fs.String(KeyDRBGHash, d.DRBGHash, "hash of the hmac-drbg generator: sha256, sha3-256 or blake2b-256")
}

// Load はフラグ・環境変数・設定ファイルから設定を読み込みます。
// 優先順位はフラグ、環境変数 (PRNGLAB_*)、設定ファイル、既定値の順です。
// fs には実行中のコマンドのフラグを渡します。fs にないキーは既定値になります。
func Load(fs *pflag.FlagSet, v *viper.Viper) (*Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBindFlag, err)
		}
	}

	d := Default()
	v.SetDefault(KeyEncoding, d.Encoding)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySamples, d.Samples)
	v.SetDefault(KeyPredict, d.Predict)
	v.SetDefault(KeyObservations, d.Observations)
	v.SetDefault(KeyVerify, d.Verify)
	v.SetDefault(KeyBytes, d.Bytes)
	v.SetDefault(KeyAlpha, d.Alpha)
	v.SetDefault(KeyLags, d.Lags)
	v.SetDefault(KeyGenerators, d.Generators)
	v.SetDefault(KeyDRBGHash, d.DRBGHash)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
		}
	}

	cfg := &Config{
		Debug:        v.GetBool(KeyDebug),
		DryRun:       v.GetBool(KeyDryRun),
		OutputDir:    v.GetString(KeyOutputDir),
		Encoding:     strings.ToLower(v.GetString(KeyEncoding)),
		Seed:         v.GetUint64(KeySeed),
		Samples:      v.GetInt(KeySamples),
		Predict:      v.GetInt(KeyPredict),
		Observations: v.GetInt(KeyObservations),
		Verify:       v.GetInt(KeyVerify),
		DumpState:    v.GetBool(KeyDumpState),
		Input:        v.GetString(KeyInput),
		Bytes:        v.GetInt(KeyBytes),
		Alpha:        v.GetFloat64(KeyAlpha),
		Lags:         v.GetIntSlice(KeyLags),
		Generators:   v.GetStringSlice(KeyGenerators),
		DRBGHash:     v.GetString(KeyDRBGHash),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の範囲を検証します
func (c *Config) Validate() error {
	switch c.Encoding {
	case EncodingUTF8, EncodingUTF8BOM, EncodingSJIS:
	default:
		return fmt.Errorf("%w: encoding=%q", ErrInvalidConfig, c.Encoding)
	}
	if c.Samples < 0 || c.Predict < 0 || c.Observations < 0 || c.Verify < 0 {
		return fmt.Errorf("%w: 件数に負の値は指定できません", ErrInvalidConfig)
	}
	if c.Bytes <= 0 {
		return fmt.Errorf("%w: bytes=%d", ErrInvalidConfig, c.Bytes)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("%w: alpha=%v", ErrInvalidConfig, c.Alpha)
	}
	for _, lag := range c.Lags {
		if lag <= 0 {
			return fmt.Errorf("%w: lag=%d", ErrInvalidConfig, lag)
		}
	}
	if _, err := prng.ParseHash(c.DRBGHash); err != nil {
		return fmt.Errorf("%w: drbg-hash: %w", ErrInvalidConfig, err)
	}
	return nil
}

// MTSeed は MT19937 のシードを返します。
// MT19937 のシードは32ビットなので、収まらない値は切り詰めずにエラーにします。
func (c *Config) MTSeed() (uint32, error) {
	if c.Seed > math.MaxUint32 {
		return 0, fmt.Errorf("%w: MT19937 のシードは32ビットです: seed=%d", ErrInvalidConfig, c.Seed)
	}
	return uint32(c.Seed), nil
}
