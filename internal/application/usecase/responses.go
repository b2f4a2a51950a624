package usecase

import "github.com/LuisG852/ProyectoDeDesarrolloWeb/internal/application/dto"

func ok(msg string) *dto.MessageResponse {
	return &dto.MessageResponse{Success: true, Message: msg}
}

func created(msg string, id int64) *dto.MessageResponse {
	return &dto.MessageResponse{Success: true, Message: msg, ID: &id}
}
