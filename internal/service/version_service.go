package service

import "errors"

var ErrVersionNotFound = errors.New("version not found")

type IVersionService interface {
	GetVersion() (string, error)
}

type versionService struct {
	version string
}

func NewVersionService(version string) IVersionService {
	return &versionService{version: version}
}

func (s *versionService) GetVersion() (string, error) {
	if s.version == "" {
		return "", ErrVersionNotFound
	}
	return s.version, nil
}
