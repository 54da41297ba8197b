package mocks

//go:generate mockgen -destination storage_mock.go -package mocks -mock_names Storage=StorageMock github.com/sirkon/dllist Storage
