package prng

import "errors"

var (
	// ErrInvalidCursor は MT19937 の状態インデックスが範囲外の場合のエラー
	ErrInvalidCursor = errors.New("状態インデックスが範囲外です")

	// ErrNotBlumPrime は BBS に渡された値がBlum素数でない場合のエラー
	ErrNotBlumPrime = errors.New("Blum素数ではありません")

	// ErrSeedNotCoprime は BBS のシードが n と互いに素でない場合のエラー
	ErrSeedNotCoprime = errors.New("シードが n と互いに素ではありません")

	// ErrNoGenerators は XOR 合成に生成器が1つも渡されなかった場合のエラー
	ErrNoGenerators = errors.New("生成器が少なくとも1つ必要です")

	// ErrInvalidKey は鍵やストリームIDの長さが不正な場合のエラー
	ErrInvalidKey = errors.New("鍵の長さが不正です")

	// ErrUnknownHash はサポートされていないハッシュ関数が指定された場合のエラー
	ErrUnknownHash = errors.New("サポートされていないハッシュ関数です")
)
