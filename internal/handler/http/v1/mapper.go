package v1

import (
	"github.com/shenikar/mineguard/internal/models"
	"github.com/shenikar/mineguard/internal/service"
	"github.com/shenikar/mineguard/internal/simulation"
)

func locationToDTO(l models.Location) LocationDTO {
	return LocationDTO{Lat: l.Lat, Lng: l.Lng, Sector: l.Sector}
}

func locationFromDTO(l LocationDTO) models.Location {
	return models.Location{Lat: l.Lat, Lng: l.Lng, Sector: l.Sector}
}

// ReportRequestToHazardModel преобразует DTO сообщения в доменную модель
func ReportRequestToHazardModel(dto ReportHazardRequest) *models.Hazard {
	return &models.Hazard{
		Type:        models.HazardType(dto.Type),
		Severity:    models.Severity(dto.Severity),
		Location:    locationFromDTO(dto.Location),
		ReportedBy:  dto.Worker,
		Source:      models.SourceWorker,
		Description: dto.Description,
	}
}

// SensorRequestToReadingModel подставляет нормальные значения вместо отсутствующих
func SensorRequestToReadingModel(dto SensorDataRequest) *models.SensorReading {
	reading := &models.SensorReading{
		SourceID:    dto.WorkerID,
		CO2:         service.DefaultCO2,
		Temperature: service.DefaultTemperature,
		Humidity:    service.DefaultHumidity,
		Location:    locationFromDTO(dto.Location),
	}
	if dto.CO2 != nil {
		reading.CO2 = *dto.CO2
	}
	if dto.Temperature != nil {
		reading.Temperature = *dto.Temperature
	}
	if dto.Humidity != nil {
		reading.Humidity = *dto.Humidity
	}
	return reading
}

// ModelToHazardResponse преобразует доменную модель в DTO для ответа
func ModelToHazardResponse(model *models.Hazard) *HazardResponse {
	return &HazardResponse{
		ID:          model.ID,
		Type:        string(model.Type),
		Severity:    string(model.Severity),
		Location:    locationToDTO(model.Location),
		ReportedBy:  model.ReportedBy,
		Source:      string(model.Source),
		Status:      string(model.Status),
		Description: model.Description,
		SensorData:  model.SensorData,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToHazardResponses преобразует слайс моделей в слайс DTO
func ModelsToHazardResponses(models []*models.Hazard) []*HazardResponse {
	responses := make([]*HazardResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToHazardResponse(model)
	}
	return responses
}

// ReportToSimulationResponse преобразует отчет симуляции в DTO
func ReportToSimulationResponse(report *simulation.Report) *SimulationResponse {
	return &SimulationResponse{
		HazardID:             report.Hazard.ID,
		HazardType:           string(report.Hazard.Type),
		Location:             locationToDTO(report.Hazard.Location),
		SimulationTime:       report.SimulationTime,
		DangerZones:          report.DangerZones,
		AffectedWorkers:      report.AffectedWorkers,
		TotalWorkers:         report.TotalWorkers,
		TotalAffectedWorkers: report.TotalAffectedWorkers,
		EvacuationRoute:      report.EvacuationRoute,
	}
}
