package uutest

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/uyouii/uutest/model"
	"github.com/uyouii/uutest/utils"
	"go.uber.org/zap"
)

// FitUnimodal tests values for unimodality and fits a unimodal-uniform model
// to them. A multimodal sample yields an empty model and no error.
func FitUnimodal(ctx context.Context, values []float64, cfg *Config) (res *model.UUModel, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("FitUnimodal recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("valueCount", len(values)))
			res, err = nil, errors.Newf("fit unimodal model: panic: %v", r)
		}
	}()

	decomposition, err := NewDecomposer(cfg).Decompose(ctx, values)
	if err != nil {
		logger.Error("Decompose failed", zap.Error(err))
		return nil, err
	}
	if !decomposition.Unimodal() {
		logger.Info("sample is multimodal", zap.Int("valueCount", len(values)))
		return &model.UUModel{}, nil
	}

	res, err = FitModel(values, decomposition.Breakpoints)
	if err != nil {
		logger.Error("FitModel failed", zap.Error(err))
		return nil, err
	}
	logger.Info("fit unimodal model success", zap.String("model", res.DebugString()))
	return res, nil
}
