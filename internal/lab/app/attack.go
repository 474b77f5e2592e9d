package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"strings"

	laberrors "github.com/shiroemons/go-prnglab/internal/lab/errors"
	"github.com/shiroemons/go-prnglab/internal/lab/models"
	"github.com/shiroemons/go-prnglab/pkg/attack"
	"github.com/shiroemons/go-prnglab/pkg/prng"
)

// RunLCGAttack は LCG の出力から m, a, c を復元し、続きの出力を予測します。
//
// 観測値は --input のファイル、なければ --seed の既定パラメータ LCG から取得します。
// いずれかの段階で復元に失敗した場合は、後続の段階を実行せずに *errors.AttackError を返します。
func (a *App) RunLCGAttack(ctx context.Context) (models.LCGAttackResult, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return models.LCGAttackResult{}, ctx.Err()
	default:
	}

	result := models.LCGAttackResult{Source: models.SourceGenerator, Seed: a.config.Seed}
	var target *prng.LCG
	if a.config.Input != "" {
		observed, err := a.readUint64s(a.config.Input)
		if err != nil {
			return result, err
		}
		result.Source = models.SourceFile
		result.Observed = observed
	} else {
		target = prng.NewDefaultLCG(a.config.Seed)
		result.TrueA, result.TrueC, result.TrueM = target.Params()
		result.Observed = target.Generate(a.config.Samples)
	}
	a.logger.Printf("LCG の出力を %d 個観測しました\n", len(result.Observed))

	params, err := attack.RecoverLCG(result.Observed)
	result.M, result.A, result.C = params.M, params.A, params.C
	if err != nil {
		step := ""
		var stepErr *attack.StepError
		if errors.As(err, &stepErr) {
			step = stepLabel(stepErr.Step)
		}
		result.FailedAt = step
		a.log.Warn().Str("step", step).Err(err).Msg("LCG のパラメータを復元できませんでした")

		if emitErr := a.emit("attack lcg", a.formatLCGAttack(result)); emitErr != nil {
			a.log.Error().Err(emitErr).Send()
		}
		return result, laberrors.NewAttackError("lcg", step, err)
	}
	a.log.Info().Str("m", params.M.String()).Str("a", params.A.String()).Str("c", params.C.String()).Msg("LCG のパラメータを復元しました")
	if target != nil && !result.ParamsMatch() {
		// 観測数が少ないと m の倍数が復元されることがある
		a.log.Warn().Int("samples", len(result.Observed)).Msg("復元したパラメータが生成器のパラメータと異なります")
	}

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
	}

	last := result.Observed[len(result.Observed)-1]
	result.Predicted = params.Predictor(last).Predict(a.config.Predict)
	if target != nil {
		result.Actual = target.Generate(a.config.Predict)
		if matches := result.Matches(); matches != len(result.Actual) {
			a.log.Warn().Int("matches", matches).Int("predicted", len(result.Actual)).Msg("予測が実際の出力と一致しませんでした")
		}
	}

	return result, a.emit("attack lcg", a.formatLCGAttack(result))
}

// RunMTAttack は連続した624個の出力から MT19937 の状態を復元し、複製を作成します。
//
// 観測値が624個を超える場合、超過分は複製の出力と照合します。
// 観測値を生成器から得た場合は、さらに --verify 個の出力を元の生成器と照合します。
func (a *App) RunMTAttack(ctx context.Context) (models.MTAttackResult, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return models.MTAttackResult{}, ctx.Err()
	default:
	}

	result := models.MTAttackResult{
		Source:   models.SourceGenerator,
		Mismatch: -1,
	}
	var observed []uint32
	var target *prng.MT19937
	if a.config.Input != "" {
		values, err := a.readUint32s(a.config.Input)
		if err != nil {
			return result, err
		}
		result.Source = models.SourceFile
		observed = values
	} else {
		seed, err := a.config.MTSeed()
		if err != nil {
			return result, err
		}
		result.Seed = seed
		target = prng.NewMT19937(seed)
		observed = target.Generate(a.config.Observations)
	}
	result.Observed = len(observed)
	a.logger.Printf("MT19937 の出力を %d 個観測しました\n", len(observed))

	clone, err := attack.CloneMT19937(observed)
	if err != nil {
		step := ""
		var stepErr *attack.StepError
		if errors.As(err, &stepErr) {
			step = stepErr.Step
		}
		a.log.Warn().Err(err).Msg("MT19937 を複製できませんでした")

		if emitErr := a.emit("attack mt", a.formatMTAttack(result)); emitErr != nil {
			a.log.Error().Err(emitErr).Send()
		}
		return result, laberrors.NewAttackError("mt", step, err)
	}
	result.Cloned = true
	a.log.Info().Int("observed", len(observed)).Msg("MT19937 の状態を復元しました")

	if a.config.DumpState {
		state, err := attack.RecoverMT19937State(observed)
		if err != nil {
			return result, laberrors.NewAttackError("mt", "state", err)
		}
		result.State = state[:]
	}

	// 624個を超える観測値は複製の出力と照合できる
	for _, want := range observed[prng.MTStateSize:] {
		result.Compare(clone.Uint32(), want)
	}

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return result, ctx.Err()
	default:
	}

	result.Predicted = clone.Generate(a.config.Predict)
	if target != nil {
		for _, p := range result.Predicted {
			result.Compare(p, target.Uint32())
		}
		for i := 0; i < a.config.Verify; i++ {
			result.Compare(clone.Uint32(), target.Uint32())
		}
	}

	report := a.formatMTAttack(result)
	if result.Mismatch >= 0 {
		a.log.Error().Int("index", result.Mismatch).Msg("複製の出力が一致しませんでした")
		if emitErr := a.emit("attack mt", report); emitErr != nil {
			a.log.Error().Err(emitErr).Send()
		}
		return result, laberrors.NewAttackError("mt", "verify",
			fmt.Errorf("%w: 照合位置 %d", ErrCloneMismatch, result.Mismatch))
	}
	a.log.Info().Int("verified", result.Verified).Msg("複製の出力が一致しました")

	return result, a.emit("attack mt", report)
}

func (a *App) readUint64s(path string) ([]uint64, error) {
	data, err := a.readObservations(path)
	if err != nil {
		return nil, err
	}
	return a.parser.ParseUint64s(path, bytes.NewReader(data))
}

func (a *App) readUint32s(path string) ([]uint32, error) {
	data, err := a.readObservations(path)
	if err != nil {
		return nil, err
	}
	return a.parser.ParseUint32s(path, bytes.NewReader(data))
}

// readObservations は観測値ファイルの内容を返します
func (a *App) readObservations(path string) ([]byte, error) {
	if !a.fs.FileExists(path) {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadObservations, path, fs.ErrNotExist)
	}
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadObservations, path, err)
	}
	return data, nil
}

func (a *App) formatLCGAttack(r models.LCGAttackResult) string {
	var builder strings.Builder
	p := a.printer

	builder.WriteString("# LCG パラメータ復元\n")
	if r.Source == models.SourceFile {
		builder.WriteString(p.Sprintf("観測値: ファイル %s\n", a.config.Input))
	} else {
		builder.WriteString(p.Sprintf("観測値: LCG(seed=%d, a=%d, c=%d, m=%d)\n",
			r.Seed, r.TrueA, r.TrueC, r.TrueM))
	}
	builder.WriteString(p.Sprintf("観測数: %d\n", len(r.Observed)))

	for _, param := range []struct {
		name  string
		value fmt.Stringer
	}{
		{"m", bigOrNil(r.M)},
		{"a", bigOrNil(r.A)},
		{"c", bigOrNil(r.C)},
	} {
		if param.value == nil {
			builder.WriteString(p.Sprintf("%s を復元できませんでした\n", param.name))
			// 後続のパラメータは失敗した値に依存するので表示しない
			break
		}
		builder.WriteString(fmt.Sprintf("%s = %s\n", param.name, param.value))
	}
	if r.Source == models.SourceGenerator && r.Recovered() && !r.ParamsMatch() {
		builder.WriteString("注意: 復元したパラメータが生成器と異なります (観測数を増やしてください)\n")
	}

	if len(r.Predicted) > 0 {
		predicted := make([]string, len(r.Predicted))
		for i, v := range r.Predicted {
			predicted[i] = v.String()
		}
		builder.WriteString("予測: " + strings.Join(predicted, " ") + "\n")
	}
	if len(r.Actual) > 0 {
		actual := make([]string, len(r.Actual))
		for i, v := range r.Actual {
			actual[i] = fmt.Sprint(v)
		}
		builder.WriteString("実際: " + strings.Join(actual, " ") + "\n")
		builder.WriteString(p.Sprintf("一致: %d/%d\n", r.Matches(), len(r.Actual)))
	}
	return builder.String()
}

func (a *App) formatMTAttack(r models.MTAttackResult) string {
	var builder strings.Builder
	p := a.printer

	builder.WriteString("# MT19937 状態復元\n")
	if r.Source == models.SourceFile {
		builder.WriteString(p.Sprintf("観測値: ファイル %s\n", a.config.Input))
	} else {
		builder.WriteString(p.Sprintf("観測値: MT19937(seed=%d)\n", r.Seed))
	}
	builder.WriteString(p.Sprintf("観測数: %d (必要数 %d)\n", r.Observed, prng.MTStateSize))

	if !r.Cloned {
		builder.WriteString("MT19937 を複製できませんでした\n")
		return builder.String()
	}

	if len(r.Predicted) > 0 {
		predicted := make([]string, len(r.Predicted))
		for i, v := range r.Predicted {
			predicted[i] = fmt.Sprint(v)
		}
		builder.WriteString("予測: " + strings.Join(predicted, " ") + "\n")
	}
	if r.Verified > 0 {
		if r.Mismatch >= 0 {
			builder.WriteString(p.Sprintf("照合: %d 個中 %d 個目で不一致\n", r.Verified, r.Mismatch+1))
		} else {
			builder.WriteString(p.Sprintf("照合: %d 個すべて一致\n", r.Verified))
		}
	}

	if len(r.State) > 0 {
		builder.WriteString("# 復元した状態\n")
		for i := 0; i < len(r.State); i += 8 {
			end := min(i+8, len(r.State))
			words := make([]string, 0, 8)
			for _, w := range r.State[i:end] {
				words = append(words, fmt.Sprintf("%08X", w))
			}
			builder.WriteString(fmt.Sprintf("%03d: %s\n", i, strings.Join(words, " ")))
		}
	}
	return builder.String()
}

// bigOrNil は nil の *big.Int を nil インターフェースに変換します
func bigOrNil(v *big.Int) fmt.Stringer {
	if v == nil {
		return nil
	}
	return v
}
