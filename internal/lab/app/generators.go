package app

import (
	"fmt"
	"io"
	"math/big"
	"sort"

	laberrors "github.com/shiroemons/go-prnglab/internal/lab/errors"
	"github.com/shiroemons/go-prnglab/pkg/prng"
)

// BBS の Blum 素数 (どちらも 3 mod 4)
const (
	bbsP = 3334888603
	bbsQ = 3996958799
)

// XOR と Box-Muller の内部生成器のシード
const (
	xorLCGSeed      = 1
	xorMTSeed       = 7
	boxMullerMTSeed = 123
)

// HMAC-DRBG のインスタンス化に使うエントロピーとノンスのバイト数
const (
	drbgEntropySize = 32
	drbgNonceSize   = 16
)

type generatorFactory func(a *App) (prng.ByteGenerator, error)

var generatorFactories = map[string]generatorFactory{
	"lcg": func(a *App) (prng.ByteGenerator, error) {
		return prng.NewDefaultLCG(a.config.Seed), nil
	},
	"mt19937": func(a *App) (prng.ByteGenerator, error) {
		seed, err := a.config.MTSeed()
		if err != nil {
			return nil, err
		}
		return prng.NewMT19937(seed), nil
	},
	"bbs": func(a *App) (prng.ByteGenerator, error) {
		seed := new(big.Int).SetUint64(a.config.Seed)
		return prng.NewBBS(seed, big.NewInt(bbsP), big.NewInt(bbsQ))
	},
	"hmac-drbg": func(a *App) (prng.ByteGenerator, error) {
		h, err := prng.ParseHash(a.config.DRBGHash)
		if err != nil {
			return nil, err
		}
		return drbgFactory(h)(a)
	},
	"hmac-drbg-sha3":    drbgFactory(prng.HashSHA3_256),
	"hmac-drbg-blake2b": drbgFactory(prng.HashBLAKE2b256),
	"chacha20": func(a *App) (prng.ByteGenerator, error) {
		key, err := a.readEntropy(prng.ChaCha20KeySize)
		if err != nil {
			return nil, err
		}
		streamID, err := a.readEntropy(prng.ChaCha20StreamIDSize)
		if err != nil {
			return nil, err
		}
		return prng.NewChaCha20(key, streamID)
	},
	"system": func(*App) (prng.ByteGenerator, error) {
		return prng.NewSystem(), nil
	},
	"xor": func(*App) (prng.ByteGenerator, error) {
		return prng.NewXOR(prng.NewDefaultLCG(xorLCGSeed), prng.NewMT19937(xorMTSeed))
	},
	"box-muller": func(*App) (prng.ByteGenerator, error) {
		return prng.NewBoxMuller(prng.NewMT19937(boxMullerMTSeed)), nil
	},
}

func drbgFactory(h prng.Hash) generatorFactory {
	return func(a *App) (prng.ByteGenerator, error) {
		entropy, err := a.readEntropy(drbgEntropySize)
		if err != nil {
			return nil, err
		}
		nonce, err := a.readEntropy(drbgNonceSize)
		if err != nil {
			return nil, err
		}
		return prng.NewHMACDRBG(entropy, nonce, prng.WithHash(h)), nil
	}
}

// GeneratorNames は利用可能な生成器名を昇順で返します
func GeneratorNames() []string {
	names := make([]string, 0, len(generatorFactories))
	for name := range generatorFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newGenerator は名前から生成器を作成します
func (a *App) newGenerator(name string) (prng.ByteGenerator, error) {
	factory, ok := generatorFactories[name]
	if !ok {
		return nil, laberrors.NewGeneratorError(name, laberrors.ErrUnknownGenerator)
	}
	gen, err := factory(a)
	if err != nil {
		return nil, laberrors.NewGeneratorError(name, err)
	}
	a.logger.Printf("生成器 %s を作成しました\n", name)
	return gen, nil
}

func (a *App) readEntropy(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(a.entropy, buf); err != nil {
		return nil, fmt.Errorf("エントロピーの取得に失敗しました: %w", err)
	}
	return buf, nil
}
