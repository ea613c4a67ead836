package meta

var friendlyMessages = map[int]string{
	1:   "Erro desconhecido na API do Meta. Tente novamente mais tarde.",
	2:   "Serviço do Meta temporariamente indisponível.",
	4:   "Limite de chamadas do app atingido. Aguarde alguns minutos.",
	17:  "Limite de chamadas da conta atingido. Aguarde alguns minutos.",
	100: "Parâmetro inválido enviado ao Meta.",
	190: "Token de acesso expirado ou inválido. Reconecte sua conta.",
	200: "Permissão insuficiente para esta operação.",
	368: "Ação bloqueada temporariamente pelo Meta por violação de política.",
	613: "Limite de requisições excedido. Tente novamente mais tarde.",
}

// FriendlyMessage traduz o código de erro da Graph API para uma mensagem exibível ao usuário
func FriendlyMessage(code int) string {
	if message, ok := friendlyMessages[code]; ok {
		return message
	}
	return "Erro ao comunicar com o Meta."
}
