package app

import (
	"context"
	"runtime"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	laberrors "github.com/shiroemons/go-prnglab/internal/lab/errors"
	"github.com/shiroemons/go-prnglab/internal/lab/models"
	"github.com/shiroemons/go-prnglab/pkg/prng"
	"github.com/shiroemons/go-prnglab/pkg/stattest"
)

type statsTask struct {
	name string
	gen  prng.ByteGenerator
}

// RunStats は各生成器の出力に統計検定を実行します。
//
// 生成器の作成は順番に行い、検定は生成器ごとに並列に実行します。
// 一部の生成器が失敗しても残りの結果は返し、失敗はまとめてエラーとして返します。
func (a *App) RunStats(ctx context.Context) (models.StatsResult, error) {
	result := models.StatsResult{Bytes: a.config.Bytes, Alpha: a.config.Alpha}
	var errs error

	var tasks []statsTask
	for _, name := range a.config.Generators {
		gen, err := a.newGenerator(name)
		if err != nil {
			a.log.Warn().Err(err).Msg("生成器を作成できませんでした")
			errs = multierr.Append(errs, err)
			result.Failed = append(result.Failed, name)
			continue
		}
		tasks = append(tasks, statsTask{name: name, gen: gen})
	}

	suite := stattest.Suite{Alpha: a.config.Alpha, Lags: a.config.Lags}
	reports := make([]stattest.Report, len(tasks))
	taskErrs := make([]error, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			// コンテキストのキャンセルチェック
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := suite.Run(task.name, task.gen.Bytes(a.config.Bytes))
			if err != nil {
				taskErrs[i] = laberrors.NewGeneratorError(task.name, err)
				return nil
			}
			reports[i] = report
			a.log.Debug().Str("generator", task.name).Float64("entropy", report.Entropy).Msg("検定が完了しました")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for i, task := range tasks {
		if taskErrs[i] != nil {
			errs = multierr.Append(errs, taskErrs[i])
			result.Failed = append(result.Failed, task.name)
			continue
		}
		result.Reports = append(result.Reports, reports[i])
	}

	if err := a.emit("stats", a.formatStats(result)); err != nil {
		errs = multierr.Append(errs, err)
	}
	return result, errs
}

func (a *App) formatStats(result models.StatsResult) string {
	var builder strings.Builder
	p := a.printer

	builder.WriteString(rule)
	builder.WriteString(p.Sprintf("  統計検定 (%d バイト/生成器, alpha=%.2f)\n", result.Bytes, result.Alpha))
	builder.WriteString(rule)

	for _, r := range result.Reports {
		builder.WriteString(p.Sprintf("\n--- %s ---\n", r.Name))
		builder.WriteString(p.Sprintf("  エントロピー       : %.6f (最大 8.0)\n", r.Entropy))
		builder.WriteString(p.Sprintf("  カイ二乗           : stat=%10.2f, p=%.4f -> %s\n",
			r.ChiSquared.Statistic, r.ChiSquared.PValue, r.ChiSquared.Verdict))
		builder.WriteString(p.Sprintf("  Kolmogorov-Smirnov : stat=%.4f, p=%.4f -> %s\n",
			r.KS.Statistic, r.KS.PValue, r.KS.Verdict))

		lags := make([]string, len(r.Lags))
		for i, lag := range r.Lags {
			lags[i] = p.Sprintf("lag=%d: %+.4f", lag, r.Autocorrelation[lag])
		}
		builder.WriteString("  自己相関           : " + strings.Join(lags, "  ") + "\n")
		builder.WriteString(p.Sprintf("  要約               : mean=%.2f median=%.2f sd=%.2f min=%.0f max=%.0f\n",
			r.Summary.Mean, r.Summary.Median, r.Summary.StdDev, r.Summary.Min, r.Summary.Max))
	}

	if len(result.Failed) > 0 {
		builder.WriteString("\n評価できなかった生成器: " + strings.Join(result.Failed, ", ") + "\n")
	}
	return builder.String()
}
