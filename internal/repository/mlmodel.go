package repository

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// MLModelRepository defines lookups over the ML model tables.
type MLModelRepository interface {
	ByID(ctx context.Context, modelID string) (*models.MLModel, bool)
	ByProject(ctx context.Context, projectID string) []models.MLModel
}

type mlModelRepository struct {
	store *store.Store
}

// NewMLModelRepository creates a new ML model repository.
func NewMLModelRepository(s *store.Store) MLModelRepository {
	return &mlModelRepository{store: s}
}

// ByID resolves a model with its evaluation metrics, use cases, and
// training parameters joined on.
func (r *mlModelRepository) ByID(ctx context.Context, modelID string) (*models.MLModel, bool) {
	row, ok := r.store.FetchOne(ctx, store.TableMLModels, "_id", modelID)
	if !ok {
		return nil, false
	}

	model := models.MLModel{
		ID:                 row.Get("_id"),
		Name:               row.Get("name"),
		ModelType:          row.Get("model_type"),
		Framework:          row.Get("framework"),
		Version:            row.Get("version"),
		Accuracy:           floatOrZero(row.Get("accuracy")),
		TrainingDataSize:   row.Get("training_data_size"),
		DeploymentStatus:   row.Get("deployment_status"),
		Description:        row.Get("description"),
		EvaluationMetrics:  r.evaluationMetrics(ctx, modelID),
		UseCases:           r.useCases(ctx, modelID),
		TrainingParameters: r.trainingParameters(ctx, modelID),
	}
	return &model, true
}

// ByProject resolves the project_ml_models junction into full model records.
func (r *mlModelRepository) ByProject(ctx context.Context, projectID string) []models.MLModel {
	junctions := r.store.Fetch(ctx, store.TableProjectMLModels, "project_id", projectID)

	mlModels := make([]models.MLModel, 0, len(junctions))
	for _, junction := range junctions {
		model, ok := r.ByID(ctx, junction.Get("ml_model_id"))
		if !ok {
			continue
		}
		mlModels = append(mlModels, *model)
	}
	return mlModels
}

func (r *mlModelRepository) evaluationMetrics(ctx context.Context, modelID string) []models.MLModelEvaluationMetric {
	rows := r.store.Fetch(ctx, store.TableMLModelMetrics, "ml_model_id", modelID)

	var metrics []models.MLModelEvaluationMetric
	for _, row := range rows {
		metrics = append(metrics, models.MLModelEvaluationMetric{
			ID:          row.Get("_id"),
			MetricName:  row.Get("metric_name"),
			MetricValue: floatOrZero(row.Get("metric_value")),
			MetricType:  row.Get("metric_type"),
		})
	}
	return metrics
}

func (r *mlModelRepository) useCases(ctx context.Context, modelID string) []models.MLModelUseCase {
	rows := r.store.Fetch(ctx, store.TableMLModelUseCases, "ml_model_id", modelID)

	var useCases []models.MLModelUseCase
	for _, row := range rows {
		useCases = append(useCases, models.MLModelUseCase{
			ID:             row.Get("_id"),
			UseCaseName:    row.Get("use_case_name"),
			BusinessImpact: row.Get("business_impact"),
		})
	}
	return useCases
}

func (r *mlModelRepository) trainingParameters(ctx context.Context, modelID string) []models.MLModelTrainingParameter {
	rows := r.store.Fetch(ctx, store.TableMLModelTrainingParams, "ml_model_id", modelID)

	var params []models.MLModelTrainingParameter
	for _, row := range rows {
		params = append(params, models.MLModelTrainingParameter{
			ID:             row.Get("_id"),
			ParameterName:  row.Get("parameter_name"),
			ParameterValue: row.Get("parameter_value"),
			ParameterType:  row.Get("parameter_type"),
		})
	}
	return params
}
