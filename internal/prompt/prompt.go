// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt builds the Swedish instructions sent to the language model
// for each content generation step. Every builder returns the complete user
// prompt; System returns the shared persona plus any earlier context.
package prompt

import (
	"fmt"

	"autobloggerx/internal/slug"
)

// WritingRules is appended verbatim to every copywriting prompt.
const WritingRules = `
SKRIVREGLER (följ dessa strikt):
- Använd dependency grammar för enkel läsbarhet
- Skriv på 8:e klass nivå, undvik nischade ord och C2-vokabulär
- Ange sakliga fakta utan symbolisk inramning (ex: inte "står som ett monument", utan "färdigställdes 1845")
- Använd neutrala, mätbara beskrivningar istället för värdeladdade adjektiv
- Ta bort personliga påpekanden som "det är värt att notera"
- Minimera överanvändning av konnektorer ("Dessutom", "Vidare")
- Undvik minisammanfattningar i slutet av stycken
- Använd aldrig töntiga fraser som "i dagens snabbrörliga värld", "mer än bara en blogg", "är mer än bara", "djupdykning", "i hjärtat av", etc. Var mer grundad och specifik.
- Ersätt "trestegsformeln" (tre adjektiv i rad) med konkreta detaljer
- Undvik "denna" - skriv om meningen istället
- Variera menings- och styckelängd för naturlig rytm
- Använd kommatecken istället för tankstreck där det passar
- Avsluta INTE med "sammanfattning" eller "slutsats" - avsluta med något intressant
`

const systemPersona = `Du är en expert på att skapa svenskt webbinnehåll.
Du skriver alltid på flytande svenska med korrekt grammatik och ton.
Du skapar engagerande, informativt och välskrivet innehåll.`

// System returns the system instruction. A non-empty context is attached
// under its own heading so the model can stay consistent with earlier steps.
func System(context string) string {
	if context == "" {
		return systemPersona
	}
	return systemPersona + "\n\nKontext från tidigare genererat innehåll:\n" + context
}

// ContactEmail returns the made-up contact address for a blog name.
func ContactEmail(websiteName string) string {
	return "kontakt@" + slug.Generate(websiteName) + ".se"
}

// About builds the prompt for the "Om oss" page.
func About(websiteName, topic string) string {
	return fmt.Sprintf(`Skapa en 'Om oss' sida på svenska för en blogg med namnet "%s" som handlar om "%s".

VIKTIGT: Förtydliga att det är en blogg (inte tidning, magasin eller företag).

Innehållet ska vara:
- 2-3 stycken (varandra med <p> taggar)
- Professionellt och engagerande
- Beskriva bloggens syfte och värden
- Nämn att det är en blogg och vad läsare kan förvänta sig
- Skrivet i HTML-format med <p> taggar
- Cirka 150-250 ord totalt

%s

Returnera ENDAST HTML-innehållet, inga extra förklaringar.`, websiteName, topic, WritingRules)
}

// Contact builds the prompt for the "Kontakta oss" page.
func Contact(websiteName, topic string) string {
	return fmt.Sprintf(`Baserat på den här bloggen, skapa en 'Kontakta oss' sida på svenska.

Bloggnamn: %s
Ämne: %s

Innehållet ska innehålla:
- Välkomnande text
- Email: %s
- Fiktiv adress som passar ämnet
- Fiktivt telefonnummer
- HTML-format med <p> och <strong> taggar
- Cirka 100-150 ord

%s

Returnera ENDAST HTML-innehållet, inga extra förklaringar.`, websiteName, topic, ContactEmail(websiteName), WritingRules)
}

// Hero builds the prompt for the front page hero section. The reply is
// expected as three labelled lines, see parse.Hero.
func Hero(websiteName string) string {
	return fmt.Sprintf(`Skapa innehåll för startsidans hero-sektion för bloggen "%s".

VIKTIGT: Förtydliga att det är en blogg (inte tidning, magasin eller företag).

Generera:
1. HERO_TITLE: En kort, slagkraftig rubrik (5-8 ord)
2. HERO_TEXT: En beskrivande text som förklarar bloggens värde och vad läsare kan förvänta sig (2-3 meningar, ca 50 ord)
3. OUTRO_TEXT: En avslutande text för startsidan med call-to-action (1-2 meningar i HTML <p> format)

%s

Formatera svaret EXAKT så här:
HERO_TITLE: [din rubrik]
HERO_TEXT: [din text]
OUTRO_TEXT: [din HTML-text]

Returnera ENDAST dessa tre rader, inget annat.`, websiteName, WritingRules)
}

// Design builds the prompt for the color scheme and typography. The reply
// is expected as seven labelled lines, see parse.Design.
func Design(websiteName, topic string) string {
	return fmt.Sprintf(`Skapa ett färgschema och designsystem för bloggen "%s" om "%s".

Välj färger och typsnitt som passar ämnet och skapar en professionell, modern känsla.

KRITISKT - WCAG Kontrastregler (följ dessa STRIKT):
- Text på bakgrund MÅSTE ha minst 4.5:1 kontrastförhållande (WCAG AA standard)
- Stora rubriker kan ha 3:1 men helst högre
- Använd ALDRIG ljus text på ljus bakgrund eller mörk text på mörk bakgrund
- Testa färgerna mentalt: Vit bakgrund (#ffffff) kräver TEXT_COLOR som är mörk (#1f2937, #111827, etc)
- Ljus bakgrund kräver mörk text, mörk bakgrund kräver ljus text

Tillgängliga typsnitt att välja från:
%s
Formatera svaret EXAKT så här:
PRIMARY_COLOR: #hexkod (för rubriker och knappar - måste ha god kontrast mot bakgrund)
SECONDARY_COLOR: #hexkod (ljusare/mörkare variant för bakgrunder och borders)
ACCENT_COLOR: #hexkod (kontrastfärg för call-to-actions)
BACKGROUND_COLOR: #hexkod (huvudbakgrund - oftast vit #ffffff eller mycket ljus #f8f9fa)
TEXT_COLOR: #hexkod (MÅSTE vara mycket mörk som #1f2937, #111827, #0f172a om bakgrund är ljus)
FONT_HEADING: [välj ett typsnitt från listan ovan]
FONT_BODY: [välj ett typsnitt från listan ovan]

EXEMPEL på bra kombinationer:
- Background: #ffffff, Text: #1f2937, Primary: #2563eb (blå tema)
- Background: #f8f9fa, Text: #111827, Primary: #059669 (grön tema)
- Background: #fffbeb, Text: #78350f, Primary: #ea580c (varm tema)

Returnera ENDAST dessa 7 rader.`, websiteName, topic, fontList())
}

// MetaDescription builds the prompt for the SEO meta description.
func MetaDescription(websiteName, topic string) string {
	return fmt.Sprintf(`Skapa en SEO meta description på svenska för "%s".

Krav:
- Exakt 140-160 tecken
- Inkludera "%s"
- Lockande och beskrivande
- Bra för sökmotoroptimering

%s

Returnera ENDAST meta description-texten, inget annat.`, websiteName, topic, WritingRules)
}
