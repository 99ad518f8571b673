package models

import "healthcal-service/internal/pkg/dto/responses"

type Client struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
}

func (c Client) ConvertIntoResponse() responses.Client {
	return responses.Client{
		ID:    c.ID,
		Name:  c.Name,
		Phone: c.Phone,
	}
}
