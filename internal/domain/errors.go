package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los usecases los devuelven tal
// cual y la capa HTTP los traduce a códigos de estado.
var (
	ErrNoEncontrado          = errors.New("recurso no encontrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrCredencialCorrupta    = errors.New("credencial almacenada corrupta")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrUpstream              = errors.New("fallo de servicio externo")
)

// Upstream marca err como fallo de un colaborador externo (base de datos, media)
// conservando la causa para los logs. errors.Is(err, ErrUpstream) sigue funcionando.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrUpstream, err)
}
