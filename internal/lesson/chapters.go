package lesson

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// moduleSpec is the fixed curriculum entry one lesson module is generated
// from. GrammarTopic and GrammarDesc may carry a {language} token that is
// replaced with the target language name when the prompt is built.
type moduleSpec struct {
	Title        string
	Vocab        []string
	GrammarTopic string
	GrammarDesc  string
}

func (m moduleSpec) topic(languageName string) string {
	return strings.ReplaceAll(m.GrammarTopic, "{language}", languageName)
}

func (m moduleSpec) desc(languageName string) string {
	return strings.ReplaceAll(m.GrammarDesc, "{language}", languageName)
}

// chapters maps chapter number to its ordered module specs. Module numbers
// are 1-based positions in the slice.
var chapters = map[int][]moduleSpec{
	1: {
		{
			Title: "Essential Greetings",
			Vocab: []string{"Good Morning", "Good Afternoon", "Good Evening", "Hello", "Goodbye",
				"See you later", "Good night", "How are you?", "I am fine", "And you?"},
			GrammarTopic: "Formal vs. Informal Registers",
			GrammarDesc:  "Explain how {language} distinguishes between talking to a friend vs. an elder/stranger",
		},
		{
			Title: "Self Introductions",
			Vocab: []string{"My name is...", "I am...", "I am from...", "Nice to meet you", "Pleased to meet you",
				"This is...", "Student", "Teacher", "Country", "City"},
			GrammarTopic: "The Verb 'to be' in {language}",
			GrammarDesc:  "Explain how to form basic sentences with the verb 'to be' (I am, you are, he/she is)",
		},
		{
			Title: "Belongings",
			Vocab: []string{"Phone", "Bag", "Book", "Pen", "Wallet", "Keys", "Water", "This", "That", "Mine/Yours"},
			GrammarTopic: "Possessive Markers",
			GrammarDesc:  "Show how possession is expressed in {language} (e.g., my book, your phone, his keys)",
		},
		{
			Title: "Family & Relationships",
			Vocab: []string{"Mother", "Father", "Sister", "Brother", "Friend", "Family", "Husband", "Wife",
				"Child/Children", "Parents"},
			GrammarTopic: "Describing People Using Adjectives",
			GrammarDesc:  "Explain how adjectives are used with nouns in {language} (e.g., 'my older sister', 'kind friend')",
		},
		{
			Title: "Basic Likes/Dislikes",
			Vocab: []string{"Like", "Love", "Dislike", "Hate", "Food", "Music", "Sports", "Movies", "Reading",
				"Coffee/Tea"},
			GrammarTopic: "Verb Conjugation for Preferences",
			GrammarDesc:  "Show how 'like', 'love', 'dislike' verbs are used in {language} with different subjects",
		},
		{
			Title: "Gratitude & Apologies",
			Vocab: []string{"Thank you", "Thanks a lot", "You're welcome", "Sorry", "Excuse me",
				"I apologize", "No problem", "It's okay", "Please", "May I...?"},
			GrammarTopic: "Polite Request Forms",
			GrammarDesc:  "Explain how to make polite requests and responses in {language}",
		},
		{
			Title: "Numbers 1-10",
			Vocab: []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"},
			GrammarTopic: "Using Numbers with Nouns",
			GrammarDesc:  "Explain how numbers combine with nouns in {language} (e.g., counting objects, using counters/classifiers if applicable)",
		},
		{
			Title: "Numbers 11-100",
			Vocab: []string{"Eleven (11)", "Twenty (20)", "Thirty (30)", "Forty (40)", "Fifty (50)",
				"Sixty (60)", "Seventy (70)", "Eighty (80)", "Ninety (90)", "One hundred (100)"},
			GrammarTopic: "Number Formation Patterns",
			GrammarDesc:  "Explain how compound numbers are formed in {language} (e.g., 23 = twenty-three)",
		},
		{
			Title: "Colors",
			Vocab: []string{"Red", "Blue", "Green", "Yellow", "Black", "White", "Orange", "Purple", "Pink", "Brown"},
			GrammarTopic: "Adjective Placement",
			GrammarDesc:  "Show where color adjectives appear relative to nouns in {language} (before/after the noun)",
		},
		{
			Title: "Review & Integration",
			Vocab: []string{"Review item 1", "Review item 2", "Review item 3", "Review item 4", "Review item 5",
				"Review item 6", "Review item 7", "Review item 8", "Review item 9", "Review item 10"},
			GrammarTopic: "Sentence Structure Review",
			GrammarDesc:  "Provide an overview of basic sentence patterns covered in Chapter 1",
		},
	},
	2: {
		{
			Title: "Places and Locations",
			Vocab: []string{"School", "Home", "Restaurant", "Park", "Hospital",
				"Market/Store", "Library", "Office", "Street", "City/Town"},
			GrammarTopic: "Prepositions of Place",
			GrammarDesc:  "Explain how {language} expresses location (at, in, on) and basic directional prepositions",
		},
		{
			Title: "Basic Feelings",
			Vocab: []string{"Happy", "Sad", "Angry", "Tired", "Excited",
				"Bored", "Worried", "Calm", "Scared/Afraid", "Surprised"},
			GrammarTopic: "Expressing Emotions and States",
			GrammarDesc:  "Show how to describe feelings and emotional states in {language}, including verb forms for 'I feel...' or 'I am...'",
		},
		{
			Title: "Expressing Affection (Advanced Edition)",
			Vocab: []string{"I love you", "I care about you", "You're special", "I miss you", "I appreciate you",
				"You mean a lot to me", "I adore you", "You make me happy", "I treasure you", "I'm grateful for you"},
			GrammarTopic: "Expressing Deep Emotions",
			GrammarDesc:  "Explain how {language} conveys affection and emotional attachment, including any cultural nuances",
		},
		{
			Title: "Expressing Surprises and Reactions",
			Vocab: []string{"Wow!", "Really?", "Amazing!", "I can't believe it!", "That's incredible!",
				"How surprising!", "No way!", "Seriously?", "Unbelievable!", "Oh my!"},
			GrammarTopic: "Exclamations and Interjections",
			GrammarDesc:  "Show how to express surprise, shock, and strong reactions naturally in {language}",
		},
		{
			Title: "Time and Telling Time",
			Vocab: []string{"What time is it?", "Hour", "Minute", "O'clock", "Half past",
				"Quarter past", "Quarter to", "Morning", "Afternoon", "Evening/Night"},
			GrammarTopic: "Time Expressions",
			GrammarDesc:  "Explain how to tell time in {language}, including different time formats and common time-related phrases",
		},
		{
			Title: "Months of the Year",
			Vocab: []string{"January", "February", "March", "April", "May", "June",
				"July", "August", "September", "October"},
			GrammarTopic: "Temporal Expressions with Months",
			GrammarDesc:  "Show how months are used in {language} with dates and temporal expressions (in January, during March, etc.)",
		},
		{
			Title: "Days of the Week",
			Vocab: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
				"Saturday", "Sunday", "Today", "Tomorrow", "Yesterday"},
			GrammarTopic: "Time Markers and Schedule Talk",
			GrammarDesc:  "Explain how to talk about schedules, routines, and appointments using days of the week in {language}",
		},
	},
	3: {
		{
			Title: "Identify family members",
			Vocab: []string{"Grandfather", "Grandmother", "Uncle", "Aunt", "Cousin (male)",
				"Cousin (female)", "Nephew", "Niece", "In-laws", "Relatives"},
			GrammarTopic: "Extended Family Vocabulary and Relationships",
			GrammarDesc:  "Explain how {language} describes extended family relationships, including any gender distinctions or formal/informal variations",
		},
		{
			Title: "Use possessive pronouns correctly",
			Vocab: []string{"My", "Your (singular)", "His", "Her", "Our",
				"Your (plural)", "Their", "Mine", "Yours", "Theirs"},
			GrammarTopic: "Possessive Pronouns and Determiners",
			GrammarDesc:  "Show the difference between possessive determiners (my, your) and possessive pronouns (mine, yours) in {language}, and how they agree with nouns",
		},
		{
			Title: "Introduce other people",
			Vocab: []string{"This is my brother", "I'd like you to meet my colleague", "Meet my friend Anna",
				"Let me introduce my teacher", "Have you met my sister?", "Do you know my parents?",
				"Allow me to introduce my boss", "I'd like to introduce you to my neighbor",
				"Say hello to my classmate", "You should meet my cousin"},
			GrammarTopic: "Introduction Formulas and Social Registers",
			GrammarDesc:  "Explain formal vs informal introduction phrases in {language}, including appropriate contexts for each level of formality",
		},
	},
	4: {
		{
			Title: "Express gratitude appropriately",
			Vocab: []string{"Thank you very much", "I really appreciate it", "I'm grateful for your help",
				"That's very kind of you", "I can't thank you enough", "Many thanks", "I owe you one",
				"How thoughtful!", "I'm so thankful", "Much obliged"},
			GrammarTopic: "Expressions of Gratitude - Formal and Informal Register",
			GrammarDesc:  "Explain the different levels of formality in expressing gratitude in {language}, from casual thanks to deeply formal appreciation, including when to use each register",
		},
		{
			Title: "Apologize formally or casually",
			Vocab: []string{"I apologize", "I'm sorry", "My apologies", "Please forgive me", "I didn't mean to",
				"Excuse me", "Pardon me", "I take full responsibility", "I regret that", "My bad"},
			GrammarTopic: "Apology Formulas and Responsibility Acknowledgment",
			GrammarDesc:  "Show how {language} distinguishes between formal and casual apologies, including expressions that acknowledge responsibility versus lighter expressions for minor mistakes",
		},
		{
			Title: "Understand cultural values",
			Vocab: []string{"Respect", "Humility", "Politeness", "Face-saving", "Indirect communication",
				"Social harmony", "Hierarchy", "Obligation", "Reciprocity", "Honor"},
			GrammarTopic: "Cultural Context in Communication",
			GrammarDesc:  "Explain how {language} reflects cultural values in communication, including concepts like indirect speech, maintaining social harmony, and respecting hierarchy through language choice",
		},
	},
}

func chapterNumbers() []int {
	nums := lo.Keys(chapters)
	sort.Ints(nums)
	return nums
}
