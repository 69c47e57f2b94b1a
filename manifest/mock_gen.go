// manifest/mock_gen.go
package manifest

//go:generate mockgen -typed -source=./parse.go -destination=../internal/mocks/mock_loader.go -package=mocks Loader
