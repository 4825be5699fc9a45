package extmocks

//go:generate mockgen -mock_names Writer=WriterMock -package extmocks -destination writer_mock.go io Writer
