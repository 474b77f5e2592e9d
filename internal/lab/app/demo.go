package app

import (
	"context"
	"strings"

	"go.uber.org/multierr"

	"github.com/shiroemons/go-prnglab/internal/lab/models"
	"github.com/shiroemons/go-prnglab/pkg/prng"
)

const (
	demoBytes   = 8
	demoNormals = 5
)

// RunDemo は各生成器の出力を8バイトずつと、Box-Muller の正規乱数を5個表示します。
// 作成に失敗した生成器は飛ばし、最後にまとめてエラーを返します。
func (a *App) RunDemo(ctx context.Context) (models.DemoResult, error) {
	var result models.DemoResult
	var errs error

	for _, name := range a.config.Generators {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		gen, err := a.newGenerator(name)
		if err != nil {
			a.log.Warn().Err(err).Msg("生成器を作成できませんでした")
			errs = multierr.Append(errs, err)
			continue
		}
		result.Samples = append(result.Samples, models.GeneratorSample{
			Name:  name,
			Bytes: gen.Bytes(demoBytes),
		})
	}

	result.Normals = prng.NewBoxMuller(prng.NewMT19937(boxMullerMTSeed)).Generate(demoNormals, 0, 1)

	if err := a.emit("demo", a.formatDemo(result)); err != nil {
		errs = multierr.Append(errs, err)
	}
	return result, errs
}

func (a *App) formatDemo(result models.DemoResult) string {
	var builder strings.Builder
	p := a.printer

	builder.WriteString(rule)
	builder.WriteString("  生成器デモ\n")
	builder.WriteString(rule)

	for _, s := range result.Samples {
		builder.WriteString(p.Sprintf("%-18s: %s\n", s.Name, bytesList(s.Bytes)))
	}

	values := make([]string, len(result.Normals))
	for i, v := range result.Normals {
		values[i] = p.Sprintf("%.4f", v)
	}
	builder.WriteString(p.Sprintf("%-18s: [%s]\n", "box-muller N(0,1)", strings.Join(values, " ")))
	return builder.String()
}
