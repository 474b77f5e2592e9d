package prng

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash は HMAC-DRBG が使用するハッシュ関数の種類です
type Hash int

const (
	HashSHA256 Hash = iota
	HashSHA3_256
	HashBLAKE2b256
)

// String はハッシュ関数名を返します
func (h Hash) String() string {
	switch h {
	case HashSHA256:
		return "sha256"
	case HashSHA3_256:
		return "sha3-256"
	case HashBLAKE2b256:
		return "blake2b-256"
	default:
		return fmt.Sprintf("Hash(%d)", int(h))
	}
}

// ParseHash はハッシュ関数名から Hash を返します
func ParseHash(name string) (Hash, error) {
	switch strings.ToLower(name) {
	case "", "sha256", "sha-256":
		return HashSHA256, nil
	case "sha3-256", "sha3":
		return HashSHA3_256, nil
	case "blake2b-256", "blake2b":
		return HashBLAKE2b256, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownHash, name)
}

func (h Hash) constructor() func() hash.Hash {
	switch h {
	case HashSHA3_256:
		return sha3.New256
	case HashBLAKE2b256:
		return func() hash.Hash {
			// 鍵なしの New256 はエラーを返さない
			d, _ := blake2b.New256(nil)
			return d
		}
	default:
		return sha256.New
	}
}

// DRBGOption は HMACDRBG の設定オプション
type DRBGOption func(*HMACDRBG)

// WithHash は使用するハッシュ関数を指定します
func WithHash(h Hash) DRBGOption {
	return func(d *HMACDRBG) {
		d.hash = h
	}
}

// HMACDRBG は NIST SP 800-90A の HMAC-DRBG です。
// 内部状態は鍵 K と値 V の2つで、どちらもハッシュの出力長です。
// 生成のたびに K と V を更新するため、状態を盗まれても過去の出力には遡れません。
type HMACDRBG struct {
	hash Hash
	newH func() hash.Hash
	k    []byte
	v    []byte
}

// NewHMACDRBG はエントロピーと nonce で初期化した HMAC-DRBG を返します。
func NewHMACDRBG(entropy, nonce []byte, opts ...DRBGOption) *HMACDRBG {
	d := &HMACDRBG{hash: HashSHA256}
	for _, opt := range opts {
		opt(d)
	}
	d.newH = d.hash.constructor()

	size := d.newH().Size()
	d.k = make([]byte, size)
	d.v = make([]byte, size)
	for i := range d.v {
		d.v[i] = 0x01
	}

	seed := make([]byte, 0, len(entropy)+len(nonce))
	seed = append(seed, entropy...)
	seed = append(seed, nonce...)
	d.update(seed)
	return d
}

// Hash は使用中のハッシュ関数を返します
func (d *HMACDRBG) Hash() Hash {
	return d.hash
}

func (d *HMACDRBG) mac(parts ...[]byte) []byte {
	m := hmac.New(d.newH, d.k)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// update は K と V を更新します。data が空でなければ2回目のパスも行います。
func (d *HMACDRBG) update(data []byte) {
	d.k = d.mac(d.v, []byte{0x00}, data)
	d.v = d.mac(d.v)
	if len(data) == 0 {
		return
	}
	d.k = d.mac(d.v, []byte{0x01}, data)
	d.v = d.mac(d.v)
}

// Reseed は新しいエントロピーを状態に取り込みます。
func (d *HMACDRBG) Reseed(entropy []byte) {
	d.update(entropy)
}

// Bytes は n バイトを生成し、その後 K と V を更新します。
func (d *HMACDRBG) Bytes(n int) []byte {
	out := make([]byte, 0, n+len(d.v))
	for len(out) < n {
		d.v = d.mac(d.v)
		out = append(out, d.v...)
	}
	d.update(nil)
	return out[:n]
}

// Read は p を乱数で埋めます。常に len(p), nil を返します。
func (d *HMACDRBG) Read(p []byte) (int, error) {
	copy(p, d.Bytes(len(p)))
	return len(p), nil
}

// Uint32 は4バイトをビッグエンディアンで解釈した値を返します。
func (d *HMACDRBG) Uint32() uint32 {
	return binary.BigEndian.Uint32(d.Bytes(4))
}

// Uint32s は n 個の32ビット整数を返します。各値ごとに生成要求を1回行います。
func (d *HMACDRBG) Uint32s(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = d.Uint32()
	}
	return out
}
