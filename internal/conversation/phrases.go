package conversation

// Phrase tables for the repeat-after-me practice. The tracker receives them
// through its Config so the progression logic stays purely mechanical;
// languages without an entry fall back to the default language's table.

var Greetings = map[string]string{
	"en-US": "How are you?",
	"tl-PH": "Kumusta ka?",
	"es-ES": "¿Cómo estás?",
	"fr-FR": "Comment ça va?",
	"de-DE": "Wie geht es dir?",
	"ja-JP": "Ogenki desu ka?",
	"zh-CN": "Nǐ hǎo ma?",
	"ko-KR": "Annyeonghaseyo?",
}

var Questions = map[string][]string{
	"en-US": {
		"What do you eat for breakfast?",
		"How do you go to work?",
		"What do you do on weekends?",
		"Do you like cooking?",
		"What is your favorite season?",
		"Do you exercise every day?",
		"What music do you like?",
		"Do you have any pets?",
		"What time do you wake up?",
		"What is your favorite food?",
		"Do you like reading books?",
		"What do you do for fun?",
		"Do you like outdoor activities?",
	},
	"tl-PH": {
		"Ano ang kinakain mo sa almusal?",
		"Paano ka pumupunta sa trabaho?",
		"Ano ang ginagawa mo sa weekends?",
		"Gusto mo bang magluto?",
		"Ano ang paborito mong season?",
		"Nag-eehersisyo ka ba araw-araw?",
		"Anong musika ang gusto mo?",
		"May alagang hayop ka ba?",
		"Anong oras ka gumigising?",
		"Ano ang paborito mong pagkain?",
		"Gusto mo bang magbasa?",
		"Ano ang ginagawa mo para magsaya?",
		"Gusto mo ba ng outdoor activities?",
	},
	"es-ES": {
		"¿Qué comes para el desayuno?",
		"¿Cómo vas al trabajo?",
		"¿Qué haces los fines de semana?",
		"¿Te gusta cocinar?",
		"¿Cuál es tu estación favorita?",
		"¿Haces ejercicio todos los días?",
		"¿Qué música te gusta?",
		"¿Tienes mascotas?",
		"¿A qué hora te despiertas?",
		"¿Cuál es tu comida favorita?",
		"¿Te gusta leer libros?",
		"¿Qué haces para divertirte?",
		"¿Te gustan las actividades al aire libre?",
	},
}

var Statements = map[string][]string{
	"en-US": {
		"The weather is nice today.",
		"I love coffee in the morning.",
		"Traffic was terrible this morning.",
		"I'm feeling a bit tired today.",
		"This restaurant has great food.",
		"I need to buy groceries later.",
		"The movie was really interesting.",
		"I'm learning something new every day.",
		"My family is doing well.",
		"I enjoy walking in the park.",
		"Work has been busy lately.",
		"I slept really well last night.",
		"The sunset was beautiful yesterday.",
	},
	"tl-PH": {
		"Maganda ang panahon ngayon.",
		"Mahilig ako sa kape sa umaga.",
		"Grabe ang trapik kanina.",
		"Medyo pagod ako ngayon.",
		"Masarap ang pagkain dito.",
		"Kailangan kong bumili ng groceries mamaya.",
		"Ang ganda ng palabas na yun.",
		"Natututo ako ng bago araw-araw.",
		"Mabuti naman ang pamilya ko.",
		"Gusto kong maglakad sa park.",
		"Abala ang trabaho kamakailan.",
		"Napakahimbing ng tulog ko kagabi.",
		"Ang ganda ng sunset kahapon.",
	},
	"es-ES": {
		"Hace buen tiempo hoy.",
		"Me encanta el café por la mañana.",
		"El tráfico estuvo terrible esta mañana.",
		"Me siento un poco cansado hoy.",
		"Este restaurante tiene comida excelente.",
		"Necesito comprar comestibles más tarde.",
		"La película fue muy interesante.",
		"Estoy aprendiendo algo nuevo cada día.",
		"Mi familia está bien.",
		"Disfruto caminar en el parque.",
		"El trabajo ha estado ocupado últimamente.",
		"Dormí muy bien anoche.",
		"La puesta de sol fue hermosa ayer.",
	},
}
