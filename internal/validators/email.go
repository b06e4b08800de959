package validators

import "strings"

// HasEmailShape faz a checagem mínima de formulário: algo@algo.
// Validação de entrega fica por conta do próprio envio de e-mail.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}
