package models

// MLModelEvaluationMetric is one scored metric attached to a model.
type MLModelEvaluationMetric struct {
	ID          string  `json:"id"`
	MetricName  string  `json:"metric_name"`
	MetricValue float64 `json:"metric_value"`
	MetricType  string  `json:"metric_type"`
}

// MLModelUseCase describes where a model is applied.
type MLModelUseCase struct {
	ID             string `json:"id"`
	UseCaseName    string `json:"use_case_name"`
	BusinessImpact string `json:"business_impact"`
}

// MLModelTrainingParameter is a single training-time parameter.
type MLModelTrainingParameter struct {
	ID             string `json:"id"`
	ParameterName  string `json:"parameter_name"`
	ParameterValue string `json:"parameter_value"`
	ParameterType  string `json:"parameter_type"`
}

// MLModel is a model with all of its joined child collections.
type MLModel struct {
	ID                 string                     `json:"id"`
	Name               string                     `json:"name"`
	ModelType          string                     `json:"model_type"`
	Framework          string                     `json:"framework"`
	Version            string                     `json:"version"`
	Accuracy           float64                    `json:"accuracy"`
	TrainingDataSize   string                     `json:"training_data_size"`
	DeploymentStatus   string                     `json:"deployment_status"`
	Description        string                     `json:"description"`
	EvaluationMetrics  []MLModelEvaluationMetric  `json:"evaluation_metrics,omitempty"`
	UseCases           []MLModelUseCase           `json:"use_cases,omitempty"`
	TrainingParameters []MLModelTrainingParameter `json:"training_parameters,omitempty"`
}
